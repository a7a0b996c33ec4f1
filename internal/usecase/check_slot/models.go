package check_slot

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request one candidate interval
type Request struct {
	Date            time.Time
	SalonID         string
	Start           types.TimeString
	DurationMinutes int
	RequesterEmail  string
}

// Response verdict for the interval. Reason is empty when available.
type Response struct {
	Available        bool
	Reason           domain.ConflictReason
	Interval         domain.Interval
	MaxPriority      int
	RequesterPrio    int
	RequiresApproval bool
	Occupants        []domain.Occupant
}
