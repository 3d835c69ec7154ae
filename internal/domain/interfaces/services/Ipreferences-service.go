package Iservices

import "chargen-connector/internal/domain/entities"

// IPreferencesService resolves and mutates per-user preferences.
//
// Resolve never fails: store errors are logged and reported as nil so the
// turn can continue anonymously.
type IPreferencesService interface {
	Resolve(userID string) *entities.UserPreferences
	SetProfanityAllowed(userID string, allowed bool) error
}
