package configresolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	cachePkg "github.com/m04kA/SMC-SalonService/internal/infra/cache"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
)

// cached values are prefixed so that "absent in this scope" can be cached too
const (
	presentMark = "="
	absentMark  = "!"
)

// Service resolves scalar settings with per-tenant override and global fallback
type Service struct {
	repo   ConfigRepository
	cache  Cache
	ttl    time.Duration
	logger Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(repo ConfigRepository, cache Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Resolve value of key for tenant. Overridable keys are looked up in the tenant scope first.
// Unknown keys and store failures yield "".
func (s *Service) Resolve(ctx context.Context, tenantID, key string) string {
	key = domain.NormalizeConfigKey(key)
	tenant := domain.NormalizeTenantID(tenantID)

	if tenant != domain.SuperScope && domain.IsOverridableKey(key) {
		if v, ok := s.lookup(ctx, domain.ConfigScope(tenant), key); ok {
			return v
		}
	}

	v, _ := s.lookup(ctx, domain.ConfigScope(domain.SuperScope), key)
	return v
}

// Settings operating window and duration bounds of tenant
func (s *Service) Settings(ctx context.Context, tenantID string) domain.TenantSettings {
	return domain.NewTenantSettings(
		s.Resolve(ctx, tenantID, domain.KeyOpenTime),
		s.Resolve(ctx, tenantID, domain.KeyCloseTime),
		s.Resolve(ctx, tenantID, domain.KeyDurationMin),
		s.Resolve(ctx, tenantID, domain.KeyDurationStep),
		s.Resolve(ctx, tenantID, domain.KeyDurationMax),
	)
}

// AdminEmails ADMIN_EMAILS of tenant, falling back to the tenant's admin contact
func (s *Service) AdminEmails(ctx context.Context, tenantID string) []string {
	emails := domain.ParseEmailList(s.Resolve(ctx, tenantID, domain.KeyAdminEmails))
	if len(emails) == 0 {
		emails = domain.ParseEmailList(s.Resolve(ctx, tenantID, domain.KeyAdminContactEmail))
	}
	return emails
}

// Set writes key into the tenant's scope and drops the cached entry.
// Non-overridable keys can only be written by the super-scope.
func (s *Service) Set(ctx context.Context, tenantID, key, value string) error {
	key = domain.NormalizeConfigKey(key)
	tenant := domain.NormalizeTenantID(tenantID)
	if key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidInput)
	}
	if tenant != domain.SuperScope && !domain.IsOverridableKey(key) {
		return fmt.Errorf("%w: key %s cannot be overridden per tenant", ErrInvalidInput, key)
	}

	scope := domain.ConfigScope(tenant)
	if err := s.repo.Set(ctx, scope, key, strings.TrimSpace(value)); err != nil {
		s.logger.Error("Set: failed to write %s/%s: %v", scope, key, err)
		return fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Delete(ctx, cacheKey(scope, key)); err != nil {
		s.logger.Warn("Set: failed to invalidate cache for %s/%s: %v", scope, key, err)
	}
	s.logger.Info("Set: %s/%s updated", scope, key)
	return nil
}

// Get value of key as seen by tenant (with fallback)
func (s *Service) Get(ctx context.Context, tenantID, key string) (string, error) {
	key = domain.NormalizeConfigKey(key)
	if key == "" {
		return "", fmt.Errorf("%w: key is required", ErrInvalidInput)
	}
	return s.Resolve(ctx, tenantID, key), nil
}

// List entries stored in the tenant's own scope
func (s *Service) List(ctx context.Context, tenantID string) ([]configRepo.Entry, error) {
	entries, err := s.repo.List(ctx, domain.ConfigScope(tenantID))
	if err != nil {
		s.logger.Error("List: failed to list config of tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}

func (s *Service) lookup(ctx context.Context, scope, key string) (string, bool) {
	ck := cacheKey(scope, key)

	if cached, err := s.cache.Get(ctx, ck); err == nil {
		if strings.HasPrefix(cached, presentMark) {
			return strings.TrimPrefix(cached, presentMark), true
		}
		return "", false
	} else if !errors.Is(err, cachePkg.ErrCacheMiss) {
		s.logger.Warn("Resolve: cache read failed for %s: %v", ck, err)
	}

	value, err := s.repo.Get(ctx, scope, key)
	switch {
	case errors.Is(err, configRepo.ErrConfigNotFound):
		s.store(ctx, ck, absentMark)
		return "", false
	case err != nil:
		s.logger.Error("Resolve: failed to read %s/%s: %v", scope, key, err)
		return "", false
	}

	value = strings.TrimSpace(value)
	s.store(ctx, ck, presentMark+value)
	return value, value != ""
}

func (s *Service) store(ctx context.Context, key, value string) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("Resolve: cache write failed for %s: %v", key, err)
	}
}

func cacheKey(scope, key string) string {
	return "config:" + scope + ":" + key
}
