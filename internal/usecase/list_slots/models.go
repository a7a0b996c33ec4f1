package list_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date            time.Time // Дата (без времени)
	SalonID         string
	DurationMinutes int // clamped to the tenant bounds; < 1 means the minimum
	RequesterEmail  string
}

// Response slots of one salon day, classified for the requester
type Response struct {
	Date             time.Time
	SalonID          string
	DurationMinutes  int
	RequiresApproval bool
	RequesterPrio    int
	Slots            []domain.Slot
}
