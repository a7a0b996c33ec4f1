package reservations

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// ConciergeRepository source of concierge display names
type ConciergeRepository interface {
	List(ctx context.Context) ([]*domain.Concierge, error)
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
