package assign_concierge

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	LockConciergeDate(ctx context.Context, code string, date time.Time) error
	ListByConciergeDate(ctx context.Context, code string, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
	AssignConcierge(ctx context.Context, id, code string) error
}

type ConciergeRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Concierge, error)
}

type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*domain.User, error)
	IsAdmin(ctx context.Context, u *domain.User) bool
}

type Notifier interface {
	ConciergeAssigned(ctx context.Context, r *domain.Reservation, c *domain.Concierge)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
