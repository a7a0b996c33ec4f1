package salons

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/cache"
	"github.com/m04kA/SMC-SalonService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func newTestService() (*Service, *usecasetest.Salons) {
	repo := usecasetest.NewSalons(
		&domain.Salon{ID: "AZUL", Name: "Salon Azul", Capacity: 20, Enabled: true, TenantID: "1", Restriction: "CONFIRM"},
		&domain.Salon{ID: "VERDE", Name: "Salon Verde", Capacity: 8, Enabled: true, TenantID: "2"},
	)
	settings := usecasetest.Settings{
		"2": domain.NewTenantSettings("08:00", "18:00", "60", "30", "120"),
	}
	identity := usecasetest.NewIdentity(
		&domain.User{Email: "root@corp.test", Role: domain.RoleAdmin, Status: domain.UserStatusActive, TenantID: "1"},
		&domain.User{Email: "t2@corp.test", Role: domain.RoleAdmin, Status: domain.UserStatusActive, TenantID: "2"},
		&domain.User{Email: "listed@corp.test", Role: domain.RoleRequester, Status: domain.UserStatusActive, TenantID: "2"},
		&domain.User{Email: "ana@corp.test", Role: domain.RoleRequester, Status: domain.UserStatusActive, TenantID: "2"},
	)
	identity.ConfigAdmins["listed@corp.test"] = true

	return NewService(repo, settings, identity, cache.NewMemory(), time.Minute, usecasetest.NopLogger{}), repo
}

func TestService_ListIsCachedAndEnriched(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	first, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.ListCalls)

	assert.True(t, first[0].RequiresApproval)
	assert.Equal(t, "07:00", first[0].Settings.Open)
	assert.Equal(t, "08:00", first[1].Settings.Open)
	assert.Equal(t, 60, first[1].Settings.DurationMin)
}

func TestService_ListAdmin(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	resp, err := s.ListAdmin(ctx, "t2@corp.test")
	require.NoError(t, err)
	require.Len(t, resp.Manage, 1)
	assert.Equal(t, "VERDE", resp.Manage[0].ID)
	assert.Len(t, resp.All, 2)

	resp, err = s.ListAdmin(ctx, "root@corp.test")
	require.NoError(t, err)
	assert.Len(t, resp.Manage, 2)

	_, err = s.ListAdmin(ctx, "ana@corp.test")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_Toggle(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		salonID string
		wantErr error
	}{
		{name: "tenant admin on own salon", caller: "t2@corp.test", salonID: "VERDE"},
		{name: "super admin on any salon", caller: "root@corp.test", salonID: "VERDE"},
		{name: "tenant admin outside scope", caller: "t2@corp.test", salonID: "AZUL", wantErr: ErrAccessDenied},
		{name: "config-listed admin is not ADMIN role", caller: "listed@corp.test", salonID: "VERDE", wantErr: ErrAccessDenied},
		{name: "requester", caller: "ana@corp.test", salonID: "VERDE", wantErr: ErrAccessDenied},
		{name: "unknown salon", caller: "root@corp.test", salonID: "NOPE", wantErr: ErrSalonNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newTestService()
			ctx := context.Background()

			resp, err := s.Toggle(ctx, tt.caller, tt.salonID, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, resp.Enabled)

			stored, err := repo.GetByID(ctx, tt.salonID)
			require.NoError(t, err)
			assert.False(t, stored.Enabled)
		})
	}
}

func TestService_ToggleInvalidatesCache(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	_, err := s.List(ctx)
	require.NoError(t, err)

	_, err = s.Toggle(ctx, "root@corp.test", "AZUL", false)
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.ListCalls)
	assert.False(t, list[0].Enabled)
	assert.Equal(t, types.TimeString("07:00").String(), list[0].Settings.Open)
}
