package send_daily_digest

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/notification"
)

type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// MessageBuilder renders the digest mail
type MessageBuilder interface {
	DigestMessage(ctx context.Context, date time.Time, reservations []*domain.Reservation, recipients []string) (notification.Message, bool, error)
}

// Sender synchronous delivery, so the job knows the outcome
type Sender interface {
	Send(ctx context.Context, msg notification.Message) error
}

type ConfigResolver interface {
	Resolve(ctx context.Context, tenantID, key string) string
}

type MetricsRecorder interface {
	ObserveJobRun(job, result string)
	ObserveNotification(kind, result string)
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
