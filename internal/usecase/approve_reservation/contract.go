package approve_reservation

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Approve(ctx context.Context, id string) error
}

type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
	IsAdmin(ctx context.Context, u *domain.User) bool
}

// Notifier requester approval notice plus the concierge desk alert when needed
type Notifier interface {
	ReservationApproved(ctx context.Context, r *domain.Reservation)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
