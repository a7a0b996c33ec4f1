package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
	"github.com/m04kA/SMC-SalonService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func day(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func newTestService() *Service {
	rows := usecasetest.NewReservations(
		&domain.Reservation{ID: "R-00001", Token: "t1", Status: domain.StatusApproved, Date: day("2026-03-09"),
			StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("10:00"),
			RequesterEmail: "Ana@corp.test", TenantID: "2", ConciergeCode: "C-00001"},
		&domain.Reservation{ID: "R-00002", Token: "t2", Status: domain.StatusPending, Date: day("2026-03-10"),
			StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("10:00"),
			RequesterEmail: "luis@corp.test", TenantID: "3", ConciergeCode: "C-00002"},
		&domain.Reservation{ID: "R-00003", Token: "t3", Status: domain.StatusCancelled, Date: day("2026-04-01"),
			StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("10:00"),
			RequesterEmail: "ana@corp.test", TenantID: "2"},
	)
	concierges := usecasetest.NewConcierges(
		&domain.Concierge{Code: "C-00001", Name: "Pedro", Active: true},
		&domain.Concierge{Code: "C-00002", Name: "Retirado", Active: false},
	)
	identity := usecasetest.NewIdentity(
		&domain.User{Email: "root@corp.test", Role: domain.RoleAdmin, Status: domain.UserStatusActive, TenantID: "1"},
		&domain.User{Email: "t2@corp.test", Role: domain.RoleAdmin, Status: domain.UserStatusActive, TenantID: "2"},
	)
	return NewService(rows, concierges, identity, usecasetest.NopLogger{})
}

func ids(resp *models.ReservationListResponse) []string {
	out := make([]string, 0, len(resp.Reservations))
	for _, r := range resp.Reservations {
		out = append(out, r.ID)
	}
	return out
}

func TestService_GetByToken(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	r, err := s.GetByToken(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "R-00002", r.ID)

	_, err = s.GetByToken(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.GetByToken(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ListMine(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	resp, err := s.ListMine(ctx, "ANA@corp.test", models.ListRequest{From: "2026-03-01", To: "2026-03-31"})
	require.NoError(t, err)
	assert.Equal(t, []string{"R-00001"}, ids(resp))
	assert.Equal(t, "Pedro", resp.Reservations[0].ConciergeName)

	resp, err = s.ListMine(ctx, "ana@corp.test", models.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	_, err = s.ListMine(ctx, "ana@corp.test", models.ListRequest{From: "09/03/2026"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ListAdmin(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	resp, err := s.ListAdmin(ctx, "root@corp.test", models.ListRequest{To: "2026-03-31"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"R-00001", "R-00002"}, ids(resp))
	for _, r := range resp.Reservations {
		if r.ID == "R-00002" {
			assert.Empty(t, r.ConciergeName)
		}
	}

	resp, err = s.ListAdmin(ctx, "t2@corp.test", models.ListRequest{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"R-00001", "R-00003"}, ids(resp))

	_, err = s.ListAdmin(ctx, "ana@corp.test", models.ListRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
