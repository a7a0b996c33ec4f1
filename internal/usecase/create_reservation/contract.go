package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	NextID(ctx context.Context) (string, error)
	LockSalonDate(ctx context.Context, salonID string, date time.Time) error
	ListBySalonDate(ctx context.Context, salonID string, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id, cancelledBy, reason string) error
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
}

type SettingsResolver interface {
	Settings(ctx context.Context, tenantID string) domain.TenantSettings
}

type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
}

// Notifier fire-and-forget notifications, called after commit
type Notifier interface {
	ReservationCreated(ctx context.Context, r *domain.Reservation)
	ReservationCancelled(ctx context.Context, r *domain.Reservation)
}

// MetricsRecorder creation outcome counter
type MetricsRecorder interface {
	ObserveReservation(outcome, reason string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenGenerator cancellation token source
type TokenGenerator interface {
	NewToken() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
