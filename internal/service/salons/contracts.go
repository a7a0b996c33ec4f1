package salons

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	List(ctx context.Context) ([]*domain.Salon, error)
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
	SetEnabled(ctx context.Context, id string, enabled bool) error
}

// SettingsResolver tenant operating window and durations
type SettingsResolver interface {
	Settings(ctx context.Context, tenantID string) domain.TenantSettings
}

// IdentityResolver caller profile and admin rights
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
	IsAdmin(ctx context.Context, user *domain.User) bool
}

// Cache key/value cache shared with the config resolver
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
