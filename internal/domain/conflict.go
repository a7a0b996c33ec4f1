package domain

// NoPriority MaxPriority value when nothing overlaps
const NoPriority = -1

// ConflictAssessment overlap analysis of one interval against existing reservations
type ConflictAssessment struct {
	Conflicts       []*Reservation
	MaxPriority     int
	HasPending      bool
	HasExternal     bool
	HasSamePriority bool
	HasApproved     bool
	RequesterPrio   int
}

// AssessConflicts collects reservations overlapping iv whose status is in statuses.
// Cancelled rows never conflict.
func AssessConflicts(iv Interval, existing []*Reservation, statuses []ReservationStatus, requesterPrio int) ConflictAssessment {
	a := ConflictAssessment{MaxPriority: NoPriority, RequesterPrio: requesterPrio}
	for _, r := range existing {
		if r == nil || r.IsCancelled() || !statusIn(r.Status, statuses) {
			continue
		}
		if !r.Interval().Overlaps(iv) {
			continue
		}
		a.Conflicts = append(a.Conflicts, r)
		if r.Priority > a.MaxPriority {
			a.MaxPriority = r.Priority
		}
		if r.IsPending() {
			a.HasPending = true
		}
		if r.IsApproved() {
			a.HasApproved = true
		}
		if r.Audience.IsExternalOrMixed() {
			a.HasExternal = true
		}
		if r.Priority == requesterPrio {
			a.HasSamePriority = true
		}
	}
	return a
}

func statusIn(s ReservationStatus, set []ReservationStatus) bool {
	for _, x := range set {
		if s == x {
			return true
		}
	}
	return false
}

// HasConflict any overlapping reservation
func (a ConflictAssessment) HasConflict() bool {
	return len(a.Conflicts) > 0
}

// Conciliation external audiences win over equal priority as the reported reason
func (a ConflictAssessment) Conciliation() ConciliationReason {
	switch {
	case !a.HasConflict():
		return ConciliationNone
	case a.HasExternal:
		return ConciliationExternalAudience
	case a.HasSamePriority:
		return ConciliationSamePriority
	default:
		return ConciliationNone
	}
}

// RequiresConciliation conflict that priority can never resolve
func (a ConflictAssessment) RequiresConciliation() bool {
	return a.Conciliation() != ConciliationNone
}

// CanOverride requester strictly outranks every occupant and no conciliation is needed
func (a ConflictAssessment) CanOverride() bool {
	return a.HasConflict() && !a.RequiresConciliation() && a.RequesterPrio > a.MaxPriority
}

// Displaceable conflicts a successful override cancels: not pending, not external
func (a ConflictAssessment) Displaceable() []*Reservation {
	out := make([]*Reservation, 0, len(a.Conflicts))
	for _, r := range a.Conflicts {
		if r.IsPending() || r.Audience.IsExternalOrMixed() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Occupants summaries of the overlapping reservations
func (a ConflictAssessment) Occupants() []Occupant {
	out := make([]Occupant, 0, len(a.Conflicts))
	for _, r := range a.Conflicts {
		out = append(out, NewOccupant(r))
	}
	return out
}

// ClassifySlot applies the selectability rules to one candidate interval
func ClassifySlot(iv Interval, restriction Restriction, existing []*Reservation, requesterPrio int) Slot {
	a := AssessConflicts(iv, existing, restriction.ConflictStatuses(), requesterPrio)
	blackout := restriction.Blocks(iv)

	slot := Slot{
		Interval:             iv,
		HasConflict:          a.HasConflict(),
		MaxPriority:          a.MaxPriority,
		RequiresConciliation: a.RequiresConciliation(),
		ConciliationReason:   a.Conciliation(),
		Restricted:           blackout,
		RequiresApproval:     restriction.RequiresApproval,
		Occupants:            a.Occupants(),
	}
	slot.Selectable = (!slot.HasConflict || a.CanOverride()) && !blackout
	slot.Available = !slot.HasConflict && !blackout
	return slot
}
