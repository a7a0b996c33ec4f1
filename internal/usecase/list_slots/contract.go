package list_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	ListBySalonDate(ctx context.Context, salonID string, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
}

// SettingsResolver tenant operating window and durations
type SettingsResolver interface {
	Settings(ctx context.Context, tenantID string) domain.TenantSettings
}

// IdentityResolver caller profile
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
