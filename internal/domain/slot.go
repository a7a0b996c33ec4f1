package domain

// ConciliationReason why a conflict needs manual coordination
type ConciliationReason string

const (
	ConciliationNone             ConciliationReason = ""
	ConciliationExternalAudience ConciliationReason = "PUBLICO_EXTERNO"
	ConciliationSamePriority     ConciliationReason = "MISMA_PRIORIDAD"
)

// RestrictionLabel label attached to slots inside a blackout window
const RestrictionLabel = "RESTRICCION"

// Occupant summary of a reservation holding (part of) a slot
type Occupant struct {
	ReservationID  string
	Priority       int
	RequesterEmail string
	RequesterName  string
	EventName      string
	Audience       AudienceType
	Interval       Interval
	Status         ReservationStatus
}

// NewOccupant summarizes r
func NewOccupant(r *Reservation) Occupant {
	return Occupant{
		ReservationID:  r.ID,
		Priority:       r.Priority,
		RequesterEmail: r.RequesterEmail,
		RequesterName:  r.RequesterName,
		EventName:      r.EventName,
		Audience:       r.Audience,
		Interval:       r.Interval(),
		Status:         r.Status,
	}
}

// Slot candidate interval classified for one requester
type Slot struct {
	Interval Interval

	HasConflict bool
	// MaxPriority highest priority among occupants, NoPriority without conflict
	MaxPriority          int
	RequiresConciliation bool
	ConciliationReason   ConciliationReason
	Restricted           bool
	RequiresApproval     bool
	Selectable           bool
	Available            bool
	Occupants            []Occupant
}

// Label "RESTRICCION" for blackout slots
func (s Slot) Label() string {
	if s.Restricted {
		return RestrictionLabel
	}
	return ""
}
