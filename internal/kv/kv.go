package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("key not found")
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is the persistence contract handed to every component. Values are
// JSON-serialized text, mirroring the localStorage model the original demo
// was built on. Backends must return ErrNotFound for absent keys and wrap
// ErrUnavailable for backend failures.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
