package salons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonService/internal/service/salons/models"
)

const cacheKey = "salons:all"

// Service salon registry: cached catalogue, per-tenant settings, admin toggling
type Service struct {
	repo     SalonRepository
	settings SettingsResolver
	identity IdentityResolver
	cache    Cache
	ttl      time.Duration
	logger   Logger

	group singleflight.Group
}

// NewService создает новый экземпляр сервиса салонов
func NewService(repo SalonRepository, settings SettingsResolver, identity IdentityResolver, cache Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
		identity: identity,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// List all salons enriched with their tenant settings
func (s *Service) List(ctx context.Context) ([]models.SalonResponse, error) {
	salons, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, salons), nil
}

// ListAdmin salons the caller may manage and the full catalogue
func (s *Service) ListAdmin(ctx context.Context, callerEmail string) (*models.AdminSalonsResponse, error) {
	caller, err := s.requireAdmin(ctx, "ListAdmin", callerEmail)
	if err != nil {
		return nil, err
	}

	salons, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	scope := caller.Scope()
	manage := make([]*domain.Salon, 0, len(salons))
	for _, salon := range salons {
		if domain.InScope(scope, salon.TenantID) {
			manage = append(manage, salon)
		}
	}

	return &models.AdminSalonsResponse{
		Manage: s.enrich(ctx, manage),
		All:    s.enrich(ctx, salons),
	}, nil
}

// Get single salon (uncached read)
func (s *Service) Get(ctx context.Context, id string) (*domain.Salon, error) {
	salon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return salon, nil
}

// Toggle enables or disables a salon. Requires an active admin whose scope covers the salon.
func (s *Service) Toggle(ctx context.Context, callerEmail, id string, enabled bool) (*models.SalonResponse, error) {
	s.logger.Info("Toggle: salon=%s enabled=%t by %s", id, enabled, callerEmail)

	// 1. Проверяем права администратора
	caller, err := s.requireAdmin(ctx, "Toggle", callerEmail)
	if err != nil {
		return nil, err
	}
	if !caller.IsActiveAdmin() {
		s.logger.Warn("Toggle: %s is not an ADMIN+ACTIVO user", callerEmail)
		return nil, ErrAccessDenied
	}

	// 2. Проверяем, что салон в зоне ответственности
	salon, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.InScope(caller.Scope(), salon.TenantID) {
		s.logger.Warn("Toggle: salon=%s (tenant %s) outside scope %s", id, salon.TenantID, caller.Scope())
		return nil, ErrAccessDenied
	}

	// 3. Сохраняем и сбрасываем кэш
	if err := s.repo.SetEnabled(ctx, salon.ID, enabled); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Toggle: failed to update salon=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Toggle - repository error: %v", ErrInternal, err)
	}
	s.Invalidate(ctx)

	salon.Enabled = enabled
	resp := models.FromDomain(salon, s.settings.Settings(ctx, salon.TenantID))
	return &resp, nil
}

// Invalidate drops the cached catalogue
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		s.logger.Warn("Invalidate: failed to drop %s: %v", cacheKey, err)
	}
}

func (s *Service) requireAdmin(ctx context.Context, op, callerEmail string) (*domain.User, error) {
	caller, err := s.identity.Resolve(ctx, callerEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrAccessDenied, op, err)
	}
	if !s.identity.IsAdmin(ctx, caller) {
		s.logger.Warn("%s: %s is not an admin", op, callerEmail)
		return nil, ErrAccessDenied
	}
	return caller, nil
}

// all catalogue from cache; concurrent misses share one store read
func (s *Service) all(ctx context.Context) ([]*domain.Salon, error) {
	if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
		var cached []models.CachedSalon
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return toDomain(cached), nil
		}
		s.logger.Warn("List: dropping undecodable cache entry %s", cacheKey)
	}

	v, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		salons, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}

		cached := make([]models.CachedSalon, 0, len(salons))
		for _, salon := range salons {
			cached = append(cached, models.FromDomainSalon(salon))
		}
		if raw, err := json.Marshal(cached); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(raw), s.ttl); err != nil {
				s.logger.Warn("List: failed to cache salons: %v", err)
			}
		}
		return cached, nil
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return toDomain(v.([]models.CachedSalon)), nil
}

func (s *Service) enrich(ctx context.Context, salons []*domain.Salon) []models.SalonResponse {
	out := make([]models.SalonResponse, 0, len(salons))
	for _, salon := range salons {
		out = append(out, models.FromDomain(salon, s.settings.Settings(ctx, salon.TenantID)))
	}
	return out
}

func toDomain(cached []models.CachedSalon) []*domain.Salon {
	out := make([]*domain.Salon, 0, len(cached))
	for _, c := range cached {
		out = append(out, c.ToDomain())
	}
	return out
}
