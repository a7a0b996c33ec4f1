package concierges

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/concierges/models"
	"github.com/m04kA/SMC-SalonService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

func newTestService() (*Service, *usecasetest.Concierges) {
	repo := usecasetest.NewConcierges(
		&domain.Concierge{Code: "C-00001", Name: "Luis", Email: "luis@corp.test", Active: true},
	)
	identity := usecasetest.NewIdentity(
		&domain.User{Email: "root@corp.test", Role: domain.RoleAdmin, Status: domain.UserStatusActive, TenantID: "1"},
		&domain.User{Email: "t2@corp.test", Role: domain.RoleAdmin, Status: domain.UserStatusActive, TenantID: "2"},
	)
	return NewService(repo, identity, usecasetest.NopLogger{}), repo
}

func TestService_List(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	list, err := s.List(ctx, "t2@corp.test")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.List(ctx, "nobody@corp.test")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_Add(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	resp, err := s.Add(ctx, "root@corp.test", &models.AddConciergeRequest{Name: " Marta ", Email: "Marta@Corp.test"})
	require.NoError(t, err)
	assert.Equal(t, "C-00002", resp.Code)
	assert.Equal(t, "marta@corp.test", resp.Email)
	assert.True(t, resp.Active)

	_, err = s.Add(ctx, "t2@corp.test", &models.AddConciergeRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.Add(ctx, "root@corp.test", &models.AddConciergeRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Update(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	resp, err := s.Update(ctx, "root@corp.test", "C-00001", &models.UpdateConciergeRequest{Name: ptr.Ptr("Luis")})
	require.NoError(t, err)
	assert.False(t, resp.Changed)

	resp, err = s.Update(ctx, "root@corp.test", "C-00001", &models.UpdateConciergeRequest{Phone: ptr.Ptr("809-555-0101")})
	require.NoError(t, err)
	assert.True(t, resp.Changed)

	stored, err := repo.GetByCode(ctx, "C-00001")
	require.NoError(t, err)
	assert.Equal(t, "809-555-0101", stored.Phone)
	assert.Equal(t, "Luis", stored.Name)

	_, err = s.Update(ctx, "root@corp.test", "C-09999", &models.UpdateConciergeRequest{})
	assert.ErrorIs(t, err, ErrConciergeNotFound)
}

func TestService_DeleteIsLogical(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "root@corp.test", "C-00001"))

	stored, err := repo.GetByCode(ctx, "C-00001")
	require.NoError(t, err)
	assert.False(t, stored.Active)

	assert.ErrorIs(t, s.Delete(ctx, "t2@corp.test", "C-00001"), ErrAccessDenied)
}
