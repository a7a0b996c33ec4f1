package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUsers map[string]*domain.User

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if email == "broken@corp.test" {
		return nil, errors.New("connection reset")
	}
	u, ok := f[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeConfig map[string]string

func (f fakeConfig) Resolve(_ context.Context, _ string, key string) string {
	return f[key]
}

func TestService_Resolve(t *testing.T) {
	users := fakeUsers{
		"ana@corp.test": {Email: "ana@corp.test", Priority: 3, Status: domain.UserStatusActive, Exists: true},
	}
	s := NewService(users, fakeConfig{}, nopLogger{})
	ctx := context.Background()

	u, err := s.Resolve(ctx, " Ana@Corp.test ")
	require.NoError(t, err)
	assert.Equal(t, 3, u.Priority)

	anon, err := s.Resolve(ctx, "ghost@corp.test")
	require.NoError(t, err)
	assert.False(t, anon.Exists)
	assert.Equal(t, 0, anon.EffectivePriority("A"))
	assert.Equal(t, domain.SuperScope, anon.Scope())

	_, err = s.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrMissingEmail)

	_, err = s.Resolve(ctx, "broken@corp.test")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_IsAdmin(t *testing.T) {
	cfg := fakeConfig{domain.KeyAdminEmails: "listed@corp.test; other@corp.test"}
	s := NewService(fakeUsers{}, cfg, nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name string
		user *domain.User
		want bool
	}{
		{name: "nil", user: nil, want: false},
		{name: "unknown", user: domain.AnonymousUser("listed@corp.test"), want: false},
		{name: "active admin", user: &domain.User{Role: domain.RoleAdmin, Status: domain.UserStatusActive, Exists: true}, want: true},
		{name: "inactive admin", user: &domain.User{Role: domain.RoleAdmin, Status: domain.UserStatusInactive, Exists: true}, want: false},
		{name: "listed active", user: &domain.User{Email: "Listed@corp.test", Status: domain.UserStatusActive, Exists: true}, want: true},
		{name: "listed pending", user: &domain.User{Email: "listed@corp.test", Status: domain.UserStatusPending, Exists: true}, want: false},
		{name: "not listed", user: &domain.User{Email: "x@corp.test", Status: domain.UserStatusActive, Exists: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsAdmin(ctx, tt.user))
		})
	}
}
