package configresolver

import (
	"context"
	"time"

	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
)

// ConfigRepository key/value store of config scopes
type ConfigRepository interface {
	Get(ctx context.Context, scope, key string) (string, error)
	List(ctx context.Context, scope string) ([]configRepo.Entry, error)
	Set(ctx context.Context, scope, key, value string) error
}

// Cache lookup cache
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
