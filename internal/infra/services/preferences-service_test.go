package services

import (
	"context"
	"errors"
	"testing"

	"chargen-connector/internal/infra/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreferencesService(repo *fakeRepository) *PreferencesService {
	ctx := context.Background()
	return NewPreferencesService(repo, ctx, logger.NewLogger(ctx, false))
}

func TestResolveReturnsNilForUnknownUser(t *testing.T) {
	svc := newTestPreferencesService(newFakeRepository())

	assert.Nil(t, svc.Resolve("never-seen"))
}

func TestResolveSwallowsStoreFailures(t *testing.T) {
	repo := newFakeRepository()
	repo.readErr = errors.New("store is down")
	svc := newTestPreferencesService(repo)

	// read failures degrade to "no preference recorded"
	assert.Nil(t, svc.Resolve("user-1"))
}

func TestSetProfanityAllowedCreatesFreshRecord(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestPreferencesService(repo)

	require.NoError(t, svc.SetProfanityAllowed("user-1", true))

	assert.True(t, repo.allowProfanityOf(t, "user-1"))
	assert.Equal(t, "user-1", repo.prefs["user-1"].UserID)
}

func TestSetProfanityAllowedOverwritesExistingFlag(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestPreferencesService(repo)

	require.NoError(t, svc.SetProfanityAllowed("user-1", true))
	require.NoError(t, svc.SetProfanityAllowed("user-1", false))

	assert.False(t, repo.allowProfanityOf(t, "user-1"))
}

func TestSetProfanityAllowedPropagatesWriteFailures(t *testing.T) {
	repo := newFakeRepository()
	repo.writeErr = errors.New("store is down")
	svc := newTestPreferencesService(repo)

	assert.Error(t, svc.SetProfanityAllowed("user-1", true))
}

func TestSetProfanityAllowedPropagatesReadFailures(t *testing.T) {
	repo := newFakeRepository()
	repo.readErr = errors.New("store is down")
	svc := newTestPreferencesService(repo)

	// unlike Resolve, the read half of the read-modify-write is fatal
	assert.Error(t, svc.SetProfanityAllowed("user-1", true))
}
