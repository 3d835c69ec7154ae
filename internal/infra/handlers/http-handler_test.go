package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chargen-connector/internal/domain/derrors"
	"chargen-connector/internal/domain/dto"
	"chargen-connector/internal/infra/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChargenService struct {
	out *dto.ServiceOutput
	err error
}

func (s *stubChargenService) HandleRequest(_ *dto.ServiceInput) (*dto.ServiceOutput, error) {
	return s.out, s.err
}

func newTestHandlers(stub *stubChargenService) *HttpHandlers {
	log := logger.NewLogger(context.Background(), false)
	return NewHttpHandlers(log, stub, false, true)
}

func postChargen(t *testing.T, h *HttpHandlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chargen", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ChargenWebhook(rec, req)
	return rec
}

func TestChargenWebhookSuccess(t *testing.T) {
	out := &dto.ServiceOutput{}
	out.VoiceOutput.Ssmltext = "a lawful good gnome bard"
	h := newTestHandlers(&stubChargenService{out: out})

	rec := postChargen(t, h, `{"subject":"GENERATE_CHARACTER","userId":"user-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var decoded dto.ServiceOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "a lawful good gnome bard", decoded.VoiceOutput.Ssmltext)
}

func TestChargenWebhookUnknownUser(t *testing.T) {
	h := newTestHandlers(&stubChargenService{err: derrors.ErrUnknownUser})

	rec := postChargen(t, h, `{"subject":"GENERATE_CHARACTER"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, derrors.ErrUnknownUser.Speech(), decoded["error"])
}

func TestChargenWebhookTurnErrorBecomesApology(t *testing.T) {
	h := newTestHandlers(&stubChargenService{err: derrors.ErrNoPendingQuestion})

	rec := postChargen(t, h, `{"subject":"YES","userId":"user-1"}`)

	// the conversation continues: apology is a normal 200 response
	require.Equal(t, http.StatusOK, rec.Code)
	var decoded dto.ServiceOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, derrors.ErrNoPendingQuestion.Speech(), decoded.VoiceOutput.Ssmltext)
	assert.False(t, decoded.ConversationEnded)
}

func TestChargenWebhookRejectsBadJSON(t *testing.T) {
	h := newTestHandlers(&stubChargenService{out: &dto.ServiceOutput{}})

	rec := postChargen(t, h, `{"subject":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChargenWebhookRejectsNonPost(t *testing.T) {
	h := newTestHandlers(&stubChargenService{out: &dto.ServiceOutput{}})

	req := httptest.NewRequest(http.MethodGet, "/chargen", nil)
	rec := httptest.NewRecorder()
	h.ChargenWebhook(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChargenWebhookStrictJSONMode(t *testing.T) {
	log := logger.NewLogger(context.Background(), false)
	h := NewHttpHandlers(log, &stubChargenService{out: &dto.ServiceOutput{}}, false, false)

	rec := postChargen(t, h, `{"subject":"HELP","userId":"user-1","bogusField":true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChargenWebhookPrettyPrint(t *testing.T) {
	log := logger.NewLogger(context.Background(), false)
	out := &dto.ServiceOutput{}
	out.VoiceOutput.Ssmltext = "see ya!"
	h := NewHttpHandlers(log, &stubChargenService{out: out}, true, true)

	rec := postChargen(t, h, `{"subject":"END_OF_CONVERSATION","userId":"user-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\n  ")
}
