package storage

import "context"

// Repository is a durable string key/value area, the terminal counterpart of
// a browser's localStorage.
type Repository interface {
	// GetItem returns ("", false, nil) when key is not set.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem overwrites any previous value.
	SetItem(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}

var _ Repository = (*SQLiteRepository)(nil)
