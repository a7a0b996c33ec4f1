package usecasetest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// Clock fixed time provider
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time {
	return c.T
}

// TxManager runs fn inline and counts calls
type TxManager struct {
	mu    sync.Mutex
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	return fn(ctx)
}

// Identity resolves callers from a fixed user table
type Identity struct {
	Users map[string]*domain.User
	// ConfigAdmins emails listed in the global ADMIN_EMAILS
	ConfigAdmins map[string]bool
}

func NewIdentity(users ...*domain.User) *Identity {
	id := &Identity{Users: map[string]*domain.User{}, ConfigAdmins: map[string]bool{}}
	for _, u := range users {
		u.Exists = true
		id.Users[strings.ToLower(u.Email)] = u
	}
	return id
}

func (i *Identity) Resolve(_ context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if u, ok := i.Users[email]; ok {
		return u, nil
	}
	return domain.AnonymousUser(email), nil
}

func (i *Identity) IsAdmin(_ context.Context, u *domain.User) bool {
	if u == nil || !u.Exists {
		return false
	}
	return u.IsActiveAdmin() || (u.IsActive() && i.ConfigAdmins[strings.ToLower(u.Email)])
}

// Settings tenant settings table; missing tenants get the defaults
type Settings map[string]domain.TenantSettings

func (s Settings) Settings(_ context.Context, tenantID string) domain.TenantSettings {
	if v, ok := s[domain.NormalizeTenantID(tenantID)]; ok {
		return v
	}
	return domain.DefaultTenantSettings()
}

// Config key/value resolver used for recipients
type Config map[string]string

func (c Config) Resolve(_ context.Context, _ string, key string) string {
	return c[key]
}

func (c Config) AdminEmails(_ context.Context, _ string) []string {
	return domain.ParseEmailList(c[domain.KeyAdminEmails])
}
