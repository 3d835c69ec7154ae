package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"chargen-connector/internal/domain/derrors"
	"chargen-connector/internal/domain/dto"
	Iservices "chargen-connector/internal/domain/interfaces/services"
	"chargen-connector/internal/infra/logger"
)

type HttpHandlers struct {
	Logger            *logger.Logger
	ChargenService    Iservices.IChargenService
	PrettyPrint       bool
	IgnoreUnknownJSON bool
}

func NewHttpHandlers(logger *logger.Logger, chargenService Iservices.IChargenService, prettyPrint bool, ignoreUnknownJSON bool) *HttpHandlers {
	return &HttpHandlers{
		Logger:            logger,
		ChargenService:    chargenService,
		PrettyPrint:       prettyPrint,
		IgnoreUnknownJSON: ignoreUnknownJSON,
	}
}

// ChargenWebhook receives a ServiceInput envelope from the voice platform,
// dispatches it, and writes the ServiceOutput envelope back.
//
// Turn errors other than an unknown user are converted once into a spoken
// apology and returned as a normal 200 response; the conversation goes on.
func (th *HttpHandlers) ChargenWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var serviceInput dto.ServiceInput
	decoder := json.NewDecoder(r.Body)
	if !th.IgnoreUnknownJSON {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(&serviceInput); err != nil {
		http.Error(w, "Error processing JSON", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	serviceOutput, err := th.ChargenService.HandleRequest(&serviceInput)
	if err != nil {
		if errors.Is(err, derrors.ErrUnknownUser) {
			th.writeJSON(w, http.StatusBadRequest, map[string]string{"error": derrors.Speech(err)})
			return
		}
		var turnErr *derrors.TurnError
		if errors.As(err, &turnErr) {
			apology := &dto.ServiceOutput{}
			apology.VoiceOutput.Ssmltext = turnErr.Speech()
			apology.ConversationEnded = false
			th.writeJSON(w, http.StatusOK, apology)
			return
		}
		th.Logger.Error(fmt.Sprintf("Unhandled error dispatching subject '%s': %v", serviceInput.Subject, err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	th.writeJSON(w, http.StatusOK, serviceOutput)
}

func (th *HttpHandlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	if th.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to encode response: %v", err))
	}
}
