package notification

import (
	"context"
)

// Sender delivers one rendered message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Observer delivery counters
type Observer interface {
	ObserveNotification(kind, result string)
}

// ConfigResolver tenant settings used for recipients and sender identity
type ConfigResolver interface {
	Resolve(ctx context.Context, tenantID, key string) string
	AdminEmails(ctx context.Context, tenantID string) []string
}

// ReservationMarker records that the concierge desk was alerted
type ReservationMarker interface {
	MarkConciergeNotified(ctx context.Context, id string) error
}

// Queue fire-and-forget delivery
type Queue interface {
	Dispatch(msg Message)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
