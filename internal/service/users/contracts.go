package users

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

// IdentityResolver caller profile
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
	IsAdmin(ctx context.Context, user *domain.User) bool
}

// AdminRecipients administrators notified about access requests
type AdminRecipients interface {
	AdminEmails(ctx context.Context, tenantID string) []string
}

// Notifier access request alert
type Notifier interface {
	AccessRequested(ctx context.Context, u *domain.User, recipients []string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
