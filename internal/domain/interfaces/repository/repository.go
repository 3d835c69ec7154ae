package repository

import "context"

// Repository is the storage contract for per-user records. FindByUserID
// returns (nil, nil) when no record exists so callers can tell "never seen"
// apart from a store failure.
type Repository[T any] interface {
	Create(ctx context.Context, collectionName string, entity T) (T, error)
	Update(ctx context.Context, collectionName string, userID string, entity T) (T, error)
	Delete(ctx context.Context, collectionName string, userID string) error
	FindByUserID(ctx context.Context, collectionName string, userID string) (*T, error)
	FindAll(ctx context.Context, collectionName string) ([]T, error)
}
