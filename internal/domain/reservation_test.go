package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestReservation_ChangeWindowOpen(t *testing.T) {
	loc := time.UTC
	r := &Reservation{
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, loc),
		StartTime: types.MustTimeString("10:00"),
		EndTime:   types.MustTimeString("11:00"),
	}

	assert.True(t, r.ChangeWindowOpen(time.Date(2026, 3, 10, 9, 29, 0, 0, loc)))
	assert.True(t, r.ChangeWindowOpen(time.Date(2026, 3, 10, 9, 30, 0, 0, loc)))
	assert.False(t, r.ChangeWindowOpen(time.Date(2026, 3, 10, 9, 31, 0, 0, loc)))
	assert.Equal(t, "2026-03-10", r.DateString())
}

func TestParseReservationStatus(t *testing.T) {
	st, err := ParseReservationStatus(" aprobada ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, st)

	_, err = ParseReservationStatus("DONE")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAudienceAndIDs(t *testing.T) {
	assert.True(t, AudienceType("externo").IsExternalOrMixed())
	assert.True(t, AudienceMixed.IsExternalOrMixed())
	assert.False(t, AudienceInternal.IsExternalOrMixed())
	assert.Equal(t, "R-00042", FormatReservationID(42))
	assert.Equal(t, "C-00007", FormatConciergeCode(7))
}

func TestConcierge_Apply(t *testing.T) {
	c := Concierge{Code: "C-00001", Name: "Ana", Active: true}
	name := "Ana"
	phone := "555"

	same, changed := c.Apply(ConciergeUpdate{Name: &name})
	assert.False(t, changed)
	assert.Equal(t, c, same)

	next, changed := c.Apply(ConciergeUpdate{Phone: &phone})
	assert.True(t, changed)
	assert.Equal(t, "555", next.Phone)
}

func TestConflictReasonOf(t *testing.T) {
	err := NewConflict(ConflictLowPriority, "priority %d", 1)
	reason, ok := ConflictReasonOf(err)
	assert.True(t, ok)
	assert.Equal(t, ConflictLowPriority, reason)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestParseAudience(t *testing.T) {
	for in, want := range map[string]AudienceType{"": AudienceNone, " mixto ": AudienceMixed, "Externo": AudienceExternal, "INTERNO": AudienceInternal} {
		got, err := ParseAudience(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseAudience("publico")
	assert.ErrorIs(t, err, ErrValidation)
}
