package repository

import (
	"context"

	supa "github.com/supabase-community/supabase-go"
)

// SupabaseRepository is the postgrest-backed alternative to
// MongoRepository, selected by the PREFS_BACKEND deployment setting. The
// supabase client carries no context, so ctx is accepted for interface
// parity only.
type SupabaseRepository[T any] struct {
	client *supa.Client
}

func NewSupabaseRepository[T any](client *supa.Client) *SupabaseRepository[T] {
	return &SupabaseRepository[T]{client: client}
}

func (r *SupabaseRepository[T]) Create(_ context.Context, tableName string, entity T) (T, error) {
	var rows []T
	_, err := r.client.From(tableName).Insert(entity, false, "", "", "").ExecuteTo(&rows)
	return entity, err
}

func (r *SupabaseRepository[T]) Update(_ context.Context, tableName string, userID string, entity T) (T, error) {
	// Upsert on user_id so a first-time write does not need a prior Create
	var rows []T
	_, err := r.client.From(tableName).Insert(entity, true, "user_id", "", "").ExecuteTo(&rows)
	return entity, err
}

func (r *SupabaseRepository[T]) Delete(_ context.Context, tableName string, userID string) error {
	var rows []T
	_, err := r.client.From(tableName).Delete("", "").Eq("user_id", userID).ExecuteTo(&rows)
	return err
}

func (r *SupabaseRepository[T]) FindByUserID(_ context.Context, tableName string, userID string) (*T, error) {
	var rows []T
	_, err := r.client.From(tableName).Select("*", "exact", false).Eq("user_id", userID).Limit(1, "").ExecuteTo(&rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *SupabaseRepository[T]) FindAll(_ context.Context, tableName string) ([]T, error) {
	var rows []T
	_, err := r.client.From(tableName).Select("*", "exact", false).ExecuteTo(&rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
