package services

import (
	"context"
	"fmt"
	"time"

	"chargen-connector/internal/domain/entities"
	repository "chargen-connector/internal/domain/interfaces/repository"
	repocontants "chargen-connector/internal/domain/interfaces/repository/contants"
	"chargen-connector/internal/infra/logger"
)

// PreferencesService is the gate in front of the external preferences
// store.
type PreferencesService struct {
	PreferencesRepository repository.Repository[entities.UserPreferences]
	Ctx                   context.Context
	Logger                *logger.Logger
}

func NewPreferencesService(preferencesRepository repository.Repository[entities.UserPreferences], ctx context.Context, logger *logger.Logger) *PreferencesService {
	return &PreferencesService{
		PreferencesRepository: preferencesRepository,
		Ctx:                   ctx,
		Logger:                logger,
	}
}

// Resolve looks up the preferences for userID. A store failure is logged
// and reported as nil, the same as "never asked": the turn continues
// anonymously rather than failing.
func (ps *PreferencesService) Resolve(userID string) *entities.UserPreferences {
	prefs, err := ps.PreferencesRepository.FindByUserID(ps.Ctx, repocontants.USER_PREFERENCES_COLLECTION, userID)
	if err != nil {
		ps.Logger.Error(fmt.Sprintf("Could not retrieve preferences for user '%s': %v. Continuing anonymously.", userID, err))
		return nil
	}
	return prefs
}

// SetProfanityAllowed records the profanity flag for userID. The
// read-modify-write is not atomic; concurrent writers are last-write-wins.
func (ps *PreferencesService) SetProfanityAllowed(userID string, allowed bool) error {
	prefs, err := ps.PreferencesRepository.FindByUserID(ps.Ctx, repocontants.USER_PREFERENCES_COLLECTION, userID)
	if err != nil {
		ps.Logger.Error(fmt.Sprintf("Failed to read preferences for user '%s' before update: %v", userID, err))
		return err
	}
	if prefs == nil {
		prefs = &entities.UserPreferences{UserID: userID}
	}
	prefs.AllowProfanity = &allowed
	prefs.UpdatedAt = time.Now()

	if _, err := ps.PreferencesRepository.Update(ps.Ctx, repocontants.USER_PREFERENCES_COLLECTION, userID, *prefs); err != nil {
		ps.Logger.Error(fmt.Sprintf("Failed to update preferences for user '%s': %v", userID, err))
		return err
	}
	return nil
}
