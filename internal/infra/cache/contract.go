package cache

import (
	"context"
	"time"
)

// Cache string key/value cache shared by the config resolver and the salon registry.
// A miss is reported as ErrCacheMiss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
