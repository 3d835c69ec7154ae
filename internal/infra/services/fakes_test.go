package services

import (
	"context"
	"math/rand"
	"testing"

	"chargen-connector/internal/domain/entities"
	"chargen-connector/internal/infra/logger"
)

// fakeRepository is an in-memory preferences store with switchable read and
// write failures.
type fakeRepository struct {
	prefs    map[string]entities.UserPreferences
	readErr  error
	writeErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{prefs: map[string]entities.UserPreferences{}}
}

func (r *fakeRepository) Create(_ context.Context, _ string, entity entities.UserPreferences) (entities.UserPreferences, error) {
	if r.writeErr != nil {
		return entity, r.writeErr
	}
	r.prefs[entity.UserID] = entity
	return entity, nil
}

func (r *fakeRepository) Update(_ context.Context, _ string, userID string, entity entities.UserPreferences) (entities.UserPreferences, error) {
	if r.writeErr != nil {
		return entity, r.writeErr
	}
	r.prefs[userID] = entity
	return entity, nil
}

func (r *fakeRepository) Delete(_ context.Context, _ string, userID string) error {
	delete(r.prefs, userID)
	return nil
}

func (r *fakeRepository) FindByUserID(_ context.Context, _ string, userID string) (*entities.UserPreferences, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	stored, ok := r.prefs[userID]
	if !ok {
		return nil, nil
	}
	copied := stored
	return &copied, nil
}

func (r *fakeRepository) FindAll(_ context.Context, _ string) ([]entities.UserPreferences, error) {
	var all []entities.UserPreferences
	for _, p := range r.prefs {
		all = append(all, p)
	}
	return all, nil
}

// allowProfanityOf reads the stored flag, failing the test when the record
// or flag is absent.
func (r *fakeRepository) allowProfanityOf(t *testing.T, userID string) bool {
	t.Helper()
	stored, ok := r.prefs[userID]
	if !ok || stored.AllowProfanity == nil {
		t.Fatalf("no stored profanity preference for user %q", userID)
	}
	return *stored.AllowProfanity
}

func storedPrefs(userID string, allowProfanity *bool) entities.UserPreferences {
	return entities.UserPreferences{UserID: userID, AllowProfanity: allowProfanity}
}

const fakeHeading = "Holy shit, your new character is a"
const fakeCharacter = "chaotic evil half-orc barbarian who swears a fucking oath before every breakfast."
const fakeResponse = "I've got more where that shit came from."

type fakeGenerator struct{}

func (fakeGenerator) GenerateHeading() string   { return fakeHeading }
func (fakeGenerator) GenerateCharacter() string { return fakeCharacter }
func (fakeGenerator) GenerateResponse() string  { return fakeResponse }

func newTestChargenService(repo *fakeRepository, shitMode bool) *ChargenService {
	ctx := context.Background()
	log := logger.NewLogger(ctx, false)
	prefs := NewPreferencesService(repo, ctx, log)
	return NewChargenService(log, prefs, fakeGenerator{}, shitMode, rand.New(rand.NewSource(1)))
}
