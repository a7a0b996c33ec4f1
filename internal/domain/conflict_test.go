package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func reservation(id string, status ReservationStatus, start, end string, prio int, audience AudienceType) *Reservation {
	return &Reservation{
		ID:        id,
		Status:    status,
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
		Priority:  prio,
		Audience:  audience,
	}
}

func TestClassifySlot_PriorityOverride(t *testing.T) {
	existing := []*Reservation{reservation("R-00001", StatusApproved, "10:00", "11:00", 3, AudienceInternal)}
	slot := Interval{Start: 9*60 + 30, End: 10*60 + 30}

	low := ClassifySlot(slot, Restriction{}, existing, 2)
	assert.True(t, low.HasConflict)
	assert.False(t, low.Selectable)
	assert.False(t, low.Available)
	assert.Equal(t, 3, low.MaxPriority)
	assert.Len(t, low.Occupants, 1)

	high := ClassifySlot(slot, Restriction{}, existing, 4)
	assert.True(t, high.HasConflict)
	assert.True(t, high.Selectable)
	assert.False(t, high.Available)
	assert.False(t, high.RequiresConciliation)
}

func TestClassifySlot_Conciliation(t *testing.T) {
	slot := Interval{Start: 600, End: 660}

	external := ClassifySlot(slot, Restriction{},
		[]*Reservation{reservation("R-1", StatusApproved, "10:00", "11:00", 1, AudienceMixed)}, 9)
	assert.True(t, external.RequiresConciliation)
	assert.Equal(t, ConciliationExternalAudience, external.ConciliationReason)
	assert.False(t, external.Selectable)

	same := ClassifySlot(slot, Restriction{},
		[]*Reservation{reservation("R-2", StatusApproved, "10:30", "11:30", 2, AudienceInternal)}, 2)
	assert.Equal(t, ConciliationSamePriority, same.ConciliationReason)
	assert.False(t, same.Selectable)
}

func TestClassifySlot_BlackoutAndPending(t *testing.T) {
	restriction := ParseRestriction("CONFIRM;12:00-13:00")
	pending := []*Reservation{reservation("R-3", StatusPending, "14:00", "15:00", 1, AudienceInternal)}

	blocked := ClassifySlot(Interval{Start: 750, End: 810}, restriction, nil, 10)
	assert.True(t, blocked.Restricted)
	assert.Equal(t, RestrictionLabel, blocked.Label())
	assert.False(t, blocked.Selectable)
	assert.True(t, blocked.RequiresApproval)

	held := ClassifySlot(Interval{Start: 840, End: 900}, restriction, pending, 10)
	assert.True(t, held.HasConflict)

	// pending rows only count in approval-gated salons
	free := ClassifySlot(Interval{Start: 840, End: 900}, Restriction{}, pending, 10)
	assert.False(t, free.HasConflict)
	assert.True(t, free.Available)
	assert.Equal(t, NoPriority, free.MaxPriority)
}

func TestAssessConflicts_Displaceable(t *testing.T) {
	existing := []*Reservation{
		reservation("R-1", StatusApproved, "10:00", "11:00", 1, AudienceInternal),
		reservation("R-2", StatusApproved, "10:30", "11:30", 2, ""),
		reservation("R-3", StatusCancelled, "10:00", "11:00", 9, AudienceInternal),
		reservation("R-4", StatusApproved, "11:00", "12:00", 9, AudienceInternal),
	}

	a := AssessConflicts(Interval{Start: 600, End: 660}, existing, []ReservationStatus{StatusApproved}, 5)

	assert.Len(t, a.Conflicts, 2)
	assert.Equal(t, 2, a.MaxPriority)
	assert.True(t, a.CanOverride())
	ids := make([]string, 0)
	for _, r := range a.Displaceable() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"R-1", "R-2"}, ids)
}
