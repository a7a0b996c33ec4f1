package settings

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ConfigStore scoped config reads and writes (config resolver)
type ConfigStore interface {
	Get(ctx context.Context, tenantID, key string) (string, error)
	Set(ctx context.Context, tenantID, key, value string) error
}

// IdentityResolver caller profile and admin rights
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
	IsAdmin(ctx context.Context, user *domain.User) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
