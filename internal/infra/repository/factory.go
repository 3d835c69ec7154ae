package repository

import (
	"fmt"

	"chargen-connector/internal/domain/entities"
	Irepository "chargen-connector/internal/domain/interfaces/repository"
	client "chargen-connector/internal/pkg"
)

// NewPreferencesRepository builds the preferences store for the configured
// backend ("mongo" or "supabase").
func NewPreferencesRepository(backend string) (Irepository.Repository[entities.UserPreferences], error) {
	switch backend {
	case "mongo", "":
		db := client.MongoClient().Database("UserPreferences")
		return NewMongoRepository[entities.UserPreferences](db), nil
	case "supabase":
		return NewSupabaseRepository[entities.UserPreferences](client.SupabaseClient()), nil
	default:
		return nil, fmt.Errorf("unknown preferences backend %q", backend)
	}
}
