package check_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type SalonRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
}

type ReservationRepository interface {
	ListBySalonDate(ctx context.Context, salonID string, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
}

type SettingsResolver interface {
	Settings(ctx context.Context, tenantID string) domain.TenantSettings
}

type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
