package check_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var testDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func row(id string, status domain.ReservationStatus, start, end string, prio int, audience domain.AudienceType) *domain.Reservation {
	return &domain.Reservation{
		ID: id, Status: status, Date: testDate, SalonID: "AZUL",
		StartTime: types.MustTimeString(start), EndTime: types.MustTimeString(end),
		Priority: prio, Audience: audience,
	}
}

func TestUseCase_Execute(t *testing.T) {
	salons := usecasetest.NewSalons(
		&domain.Salon{ID: "AZUL", TenantID: "1", Enabled: true, Restriction: "CONFIRM;13:00-14:00"},
	)
	reservations := usecasetest.NewReservations(
		row("R-00001", domain.StatusApproved, "09:00", "10:00", 3, domain.AudienceInternal),
		row("R-00002", domain.StatusPending, "10:00", "11:00", 1, domain.AudienceInternal),
		row("R-00003", domain.StatusApproved, "11:00", "12:00", 1, domain.AudienceMixed),
		row("R-00004", domain.StatusCancelled, "15:00", "16:00", 9, domain.AudienceInternal),
		row("R-00005", domain.StatusApproved, "16:00", "17:00", 0, domain.AudienceInternal),
	)
	identity := usecasetest.NewIdentity(
		&domain.User{Email: "p3@corp.test", Priority: 3, Status: domain.UserStatusActive},
		&domain.User{Email: "p5@corp.test", Priority: 5, Status: domain.UserStatusActive},
	)
	uc := NewUseCase(salons, reservations, usecasetest.Settings{}, identity, usecasetest.NopLogger{})

	tests := []struct {
		name      string
		start     string
		duration  int
		email     string
		available bool
		reason    domain.ConflictReason
	}{
		{name: "free slot", start: "15:00", duration: 60, email: "p3@corp.test", available: true},
		{name: "before opening", start: "06:30", duration: 60, email: "p5@corp.test", reason: domain.ConflictOutOfHours},
		{name: "after last start", start: "19:30", duration: 30, email: "p5@corp.test", reason: domain.ConflictOutOfHours},
		{name: "blackout", start: "13:30", duration: 30, email: "p5@corp.test", reason: domain.ConflictRestrictedWindow},
		{name: "pending occupant", start: "10:30", duration: 60, email: "p5@corp.test", reason: domain.ConflictPendingExists},
		{name: "mixed audience", start: "11:00", duration: 30, email: "p5@corp.test", reason: domain.ConflictExternalAudience},
		{name: "same priority", start: "09:00", duration: 30, email: "p3@corp.test", reason: domain.ConflictSamePriority},
		{name: "outranks", start: "09:00", duration: 30, email: "p5@corp.test", available: true},
		{name: "outranked", start: "09:00", duration: 30, email: "nobody@corp.test", reason: domain.ConflictLowPriority},
		{name: "no priority against no priority", start: "16:00", duration: 30, email: "nobody@corp.test", reason: domain.ConflictLowPriority},
		{name: "no priority against mixed audience", start: "11:00", duration: 30, email: "nobody@corp.test", reason: domain.ConflictLowPriority},
		{name: "no priority behind pending", start: "10:30", duration: 30, email: "nobody@corp.test", reason: domain.ConflictPendingExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				Date: testDate, SalonID: "AZUL", Start: types.TimeString(tt.start),
				DurationMinutes: tt.duration, RequesterEmail: tt.email,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.available, resp.Available)
			assert.Equal(t, tt.reason, resp.Reason)
			assert.True(t, resp.RequiresApproval)
		})
	}
}

func TestUseCase_Errors(t *testing.T) {
	uc := NewUseCase(usecasetest.NewSalons(), usecasetest.NewReservations(), usecasetest.Settings{},
		usecasetest.NewIdentity(), usecasetest.NopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, SalonID: "AZUL", Start: "09:00", DurationMinutes: 30})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, SalonID: "AZUL", Start: "9h", DurationMinutes: 30})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
