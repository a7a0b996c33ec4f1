package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/users/models"
	"github.com/m04kA/SMC-SalonService/internal/usecase/usecasetest"
)

func newTestService() (*Service, *usecasetest.Users, *usecasetest.Notifier) {
	root := &domain.User{Email: "root@corp.test", Role: domain.RoleAdmin, Status: domain.UserStatusActive, TenantID: "1"}
	tenantAdmin := &domain.User{Email: "t2@corp.test", Role: domain.RoleAdmin, Status: domain.UserStatusActive, TenantID: "2"}
	existing := &domain.User{
		Email: "ana@corp.test", Name: "Ana", Role: domain.RoleRequester, Priority: 3,
		SalonWhitelist: []string{"AZUL"}, Status: domain.UserStatusInactive, TenantID: "2",
	}

	repo := usecasetest.NewUsers(root, tenantAdmin, existing)
	identity := usecasetest.NewIdentity(root, tenantAdmin)
	notifier := &usecasetest.Notifier{}
	cfg := usecasetest.Config{domain.KeyAdminEmails: "root@corp.test; ops@corp.test"}

	return NewService(repo, identity, cfg, notifier, usecasetest.NopLogger{}), repo, notifier
}

func TestService_List(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	list, err := s.List(ctx, "root@corp.test")
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = s.List(ctx, "t2@corp.test")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Upsert(t *testing.T) {
	s, repo, _ := newTestService()
	ctx := context.Background()

	resp, err := s.Upsert(ctx, "root@corp.test", &models.UpsertUserRequest{
		Email:          " Luis@Corp.test ",
		Name:           "Luis",
		Role:           "admin",
		Priority:       0,
		SalonWhitelist: "azul; verde ;AZUL",
		Status:         "activo",
		TenantID:       "3.7",
	})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, "AZUL;VERDE", resp.User.SalonWhitelist)
	assert.Equal(t, "3", resp.User.TenantID)

	stored, err := repo.GetByEmail(ctx, "luis@corp.test")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, stored.Role)
	assert.Equal(t, 2, stored.BasePriority())

	resp, err = s.Upsert(ctx, "root@corp.test", &models.UpsertUserRequest{Email: "luis@corp.test", Status: "INACTIVO"})
	require.NoError(t, err)
	assert.False(t, resp.Created)

	_, err = s.Upsert(ctx, "t2@corp.test", &models.UpsertUserRequest{Email: "x@corp.test"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.Upsert(ctx, "root@corp.test", &models.UpsertUserRequest{Email: "x@corp.test", Priority: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_RequestAccess(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		req     models.AccessRequest
		wantErr bool
		created bool
	}{
		{name: "new user", caller: "new@corp.test", req: models.AccessRequest{Name: "Nuevo", Department: "TI", Extension: "1234"}, created: true},
		{name: "existing user keeps role", caller: "ana@corp.test", req: models.AccessRequest{Name: "Ana M", Department: "RRHH", Extension: "55"}},
		{name: "extension with letters", caller: "new@corp.test", req: models.AccessRequest{Name: "N", Department: "TI", Extension: "12a"}, wantErr: true},
		{name: "missing department", caller: "new@corp.test", req: models.AccessRequest{Name: "N", Extension: "12"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo, notifier := newTestService()
			ctx := context.Background()

			resp, err := s.RequestAccess(ctx, tt.caller, &tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Empty(t, notifier.AccessRequests)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.created, resp.Created)

			stored, err := repo.GetByEmail(ctx, tt.caller)
			require.NoError(t, err)
			assert.Equal(t, domain.UserStatusPending, stored.Status)
			assert.Equal(t, tt.req.Extension, stored.Extension)

			require.Len(t, notifier.AccessRecipients, 1)
			assert.Equal(t, []string{"root@corp.test", "ops@corp.test"}, notifier.AccessRecipients[0])
		})
	}

	t.Run("existing row keeps priority and tenant", func(t *testing.T) {
		s, repo, _ := newTestService()
		ctx := context.Background()

		_, err := s.RequestAccess(ctx, "ana@corp.test", &models.AccessRequest{Name: "Ana", Department: "RRHH", Extension: "7"})
		require.NoError(t, err)

		stored, err := repo.GetByEmail(ctx, "ana@corp.test")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Priority)
		assert.Equal(t, "2", stored.TenantID)
		assert.Equal(t, []string{"AZUL"}, stored.SalonWhitelist)
	})
}
