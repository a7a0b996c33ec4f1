package concierges

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ConciergeRepository интерфейс репозитория консьержей
type ConciergeRepository interface {
	List(ctx context.Context) ([]*domain.Concierge, error)
	GetByCode(ctx context.Context, code string) (*domain.Concierge, error)
	Create(ctx context.Context, c *domain.Concierge) (*domain.Concierge, error)
	Update(ctx context.Context, c *domain.Concierge) error
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
