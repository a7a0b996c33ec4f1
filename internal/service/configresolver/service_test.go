package configresolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/cache"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	values map[string]map[string]string
	reads  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{values: map[string]map[string]string{}}
}

func (f *fakeRepo) Get(_ context.Context, scope, key string) (string, error) {
	f.reads++
	v, ok := f.values[scope][key]
	if !ok {
		return "", configRepo.ErrConfigNotFound
	}
	return v, nil
}

func (f *fakeRepo) List(_ context.Context, scope string) ([]configRepo.Entry, error) {
	out := make([]configRepo.Entry, 0)
	for k, v := range f.values[scope] {
		out = append(out, configRepo.Entry{Scope: scope, Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeRepo) Set(_ context.Context, scope, key, value string) error {
	if f.values[scope] == nil {
		f.values[scope] = map[string]string{}
	}
	f.values[scope][key] = value
	return nil
}

func TestService_ResolveFallback(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.values["Config"] = map[string]string{
		domain.KeyOpenTime:        "08:00",
		domain.KeyConciergeEmails: "desk@corp.test",
		domain.KeyMailSenderName:  "Reservas",
	}
	repo.values["Config3"] = map[string]string{
		domain.KeyOpenTime:        "09:00",
		domain.KeyConciergeEmails: "ignored@corp.test",
		domain.KeyMailSenderName:  "",
	}
	s := NewService(repo, cache.NewMemory(), time.Minute, nopLogger{})

	assert.Equal(t, "09:00", s.Resolve(ctx, "3", "horario_inicio"))
	assert.Equal(t, "08:00", s.Resolve(ctx, "1", domain.KeyOpenTime))
	assert.Equal(t, "08:00", s.Resolve(ctx, "5", domain.KeyOpenTime))
	// not overridable: tenant row ignored
	assert.Equal(t, "desk@corp.test", s.Resolve(ctx, "3", domain.KeyConciergeEmails))
	// empty override falls back
	assert.Equal(t, "Reservas", s.Resolve(ctx, "3", domain.KeyMailSenderName))
	assert.Equal(t, "", s.Resolve(ctx, "3", "NO_SUCH_KEY"))
}

func TestService_CachesAndInvalidates(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.values["Config"] = map[string]string{domain.KeyDurationMax: "120"}
	s := NewService(repo, cache.NewMemory(), time.Minute, nopLogger{})

	assert.Equal(t, "120", s.Resolve(ctx, "1", domain.KeyDurationMax))
	reads := repo.reads
	assert.Equal(t, "120", s.Resolve(ctx, "1", domain.KeyDurationMax))
	assert.Equal(t, reads, repo.reads)

	require.NoError(t, s.Set(ctx, "1", domain.KeyDurationMax, " 180 "))
	assert.Equal(t, "180", s.Resolve(ctx, "1", domain.KeyDurationMax))
	assert.Equal(t, 180, s.Settings(ctx, "1").DurationMax)
}

func TestService_SetRules(t *testing.T) {
	ctx := context.Background()
	s := NewService(newFakeRepo(), cache.NewMemory(), time.Minute, nopLogger{})

	assert.ErrorIs(t, s.Set(ctx, "2", domain.KeyConciergeEmails, "x@y.z"), ErrInvalidInput)
	assert.ErrorIs(t, s.Set(ctx, "1", " ", "v"), ErrInvalidInput)
	require.NoError(t, s.Set(ctx, "2", domain.KeyOpenTime, "10:00"))
	assert.Equal(t, "10:00", s.Resolve(ctx, "2", domain.KeyOpenTime))
}

func TestService_AdminEmails(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.values["Config"] = map[string]string{domain.KeyAdminContactEmail: "Boss@corp.test"}
	repo.values["Config2"] = map[string]string{domain.KeyAdminEmails: "a@corp.test;b@corp.test"}
	s := NewService(repo, cache.NewMemory(), time.Minute, nopLogger{})

	assert.Equal(t, []string{"a@corp.test", "b@corp.test"}, s.AdminEmails(ctx, "2"))
	assert.Equal(t, []string{"boss@corp.test"}, s.AdminEmails(ctx, "1"))
}
