package cache

import (
	"context"
	"time"
)

// Store is a string key-value store with per-key expiration
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
