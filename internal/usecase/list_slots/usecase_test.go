package list_slots

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

func reservation(id string, status domain.ReservationStatus, start, end string, prio int, audience domain.AudienceType) *domain.Reservation {
	return &domain.Reservation{
		ID: id, Status: status, Date: testDate, SalonID: "AZUL",
		StartTime: types.MustTimeString(start), EndTime: types.MustTimeString(end),
		Priority: prio, Audience: audience, RequesterEmail: id + "@corp.test",
	}
}

func newUseCase(salon *domain.Salon, settings domain.TenantSettings, rows ...*domain.Reservation) *UseCase {
	identity := usecasetest.NewIdentity(
		&domain.User{Email: "p2@corp.test", Priority: 2, Status: domain.UserStatusActive},
		&domain.User{Email: "p4@corp.test", Priority: 4, Status: domain.UserStatusActive},
		&domain.User{Email: "p4other@corp.test", Priority: 4, Status: domain.UserStatusActive, SalonWhitelist: []string{"VERDE"}},
	)
	return NewUseCase(
		usecasetest.NewSalons(salon),
		usecasetest.NewReservations(rows...),
		usecasetest.Settings{"1": settings},
		identity,
		usecasetest.NopLogger{},
	)
}

func slotAt(t *testing.T, resp *Response, start string) domain.Slot {
	t.Helper()
	m := types.MustTimeString(start).Minutes()
	for _, s := range resp.Slots {
		if s.Interval.Start == m {
			return s
		}
	}
	t.Fatalf("no slot at %s", start)
	return domain.Slot{}
}

func TestGenerateIntervals(t *testing.T) {
	settings := domain.NewTenantSettings("07:00", "20:00", "30", "30", "240")

	slots := generateIntervals(settings, 60)
	require.NotEmpty(t, slots)
	assert.Equal(t, domain.Interval{Start: 7 * 60, End: 8 * 60}, slots[0])
	assert.Equal(t, domain.Interval{Start: 19 * 60, End: 20 * 60}, slots[len(slots)-1])
	assert.Len(t, slots, 25)

	assert.Empty(t, generateIntervals(domain.NewTenantSettings("09:00", "10:00", "30", "30", "240"), 90))
}

func TestUseCase_ClassifiesAgainstApprovedOccupant(t *testing.T) {
	salon := &domain.Salon{ID: "AZUL", TenantID: "1", Enabled: true}
	settings := domain.NewTenantSettings("09:00", "12:00", "30", "30", "240")
	existing := reservation("R-00001", domain.StatusApproved, "10:00", "11:00", 3, domain.AudienceInternal)

	uc := newUseCase(salon, settings, existing)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, SalonID: "AZUL", DurationMinutes: 60, RequesterEmail: "p2@corp.test"})
	require.NoError(t, err)
	s := slotAt(t, resp, "09:30")
	assert.True(t, s.HasConflict)
	assert.Equal(t, 3, s.MaxPriority)
	assert.False(t, s.Selectable)
	assert.False(t, s.Available)

	free := slotAt(t, resp, "11:00")
	assert.True(t, free.Available)
	assert.Equal(t, domain.NoPriority, free.MaxPriority)

	resp, err = uc.Execute(context.Background(), &Request{Date: testDate, SalonID: "AZUL", DurationMinutes: 60, RequesterEmail: "p4@corp.test"})
	require.NoError(t, err)
	s = slotAt(t, resp, "09:30")
	assert.True(t, s.Selectable)
	assert.False(t, s.Available)
	require.Len(t, s.Occupants, 1)
	assert.Equal(t, "R-00001", s.Occupants[0].ReservationID)

	resp, err = uc.Execute(context.Background(), &Request{Date: testDate, SalonID: "AZUL", DurationMinutes: 60, RequesterEmail: "p4other@corp.test"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.RequesterPrio)
	assert.False(t, slotAt(t, resp, "09:30").Selectable)
}

func TestUseCase_RestrictedSalon(t *testing.T) {
	salon := &domain.Salon{ID: "AZUL", TenantID: "1", Enabled: true, Restriction: "CONFIRM;12:00-13:00"}
	settings := domain.NewTenantSettings("09:00", "14:00", "30", "60", "240")
	pending := reservation("R-00002", domain.StatusPending, "09:00", "10:00", 1, domain.AudienceInternal)
	external := reservation("R-00003", domain.StatusApproved, "10:00", "11:00", 1, domain.AudienceExternal)

	uc := newUseCase(salon, settings, pending, external)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, SalonID: "AZUL", DurationMinutes: 60, RequesterEmail: "p4@corp.test"})
	require.NoError(t, err)
	assert.True(t, resp.RequiresApproval)

	s := slotAt(t, resp, "09:00")
	assert.True(t, s.HasConflict)
	assert.True(t, s.RequiresApproval)

	ext := slotAt(t, resp, "10:00")
	assert.True(t, ext.RequiresConciliation)
	assert.Equal(t, domain.ConciliationExternalAudience, ext.ConciliationReason)
	assert.False(t, ext.Selectable)

	blocked := slotAt(t, resp, "12:00")
	assert.True(t, blocked.Restricted)
	assert.Equal(t, domain.RestrictionLabel, blocked.Label())
	assert.False(t, blocked.Selectable)
}

func TestUseCase_EdgeCases(t *testing.T) {
	salon := &domain.Salon{ID: "AZUL", TenantID: "1", Enabled: true}
	settings := domain.NewTenantSettings("09:00", "11:00", "30", "30", "90")
	uc := newUseCase(salon, settings)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{Date: testDate, SalonID: "NOPE", DurationMinutes: 60, RequesterEmail: "p2@corp.test"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	resp, err = uc.Execute(ctx, &Request{Date: testDate, SalonID: "AZUL", DurationMinutes: 0, RequesterEmail: "p2@corp.test"})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 4)

	resp, err = uc.Execute(ctx, &Request{Date: testDate, SalonID: "AZUL", DurationMinutes: 600, RequesterEmail: "p2@corp.test"})
	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 2)

	_, err = uc.Execute(ctx, &Request{SalonID: "AZUL"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
