package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/configresolver"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

// Service admin access to configuration, bound to the caller's tenant scope
type Service struct {
	store    ConfigStore
	identity IdentityResolver
	logger   Logger
}

func NewService(store ConfigStore, identity IdentityResolver, logger Logger) *Service {
	return &Service{store: store, identity: identity, logger: logger}
}

// Get effective value of key for the caller's tenant
func (s *Service) Get(ctx context.Context, callerEmail, key string) (*models.ConfigEntryResponse, error) {
	caller, err := s.requireAdmin(ctx, "Get", callerEmail)
	if err != nil {
		return nil, err
	}

	key = domain.NormalizeConfigKey(key)
	value, err := s.store.Get(ctx, caller.Scope(), key)
	if err != nil {
		return nil, s.storeError("Get", err)
	}
	return s.entry(caller, key, value), nil
}

// Set writes key into the caller's scope. Tenant admins may only override overridable keys.
func (s *Service) Set(ctx context.Context, callerEmail, key string, req *models.SetConfigRequest) (*models.ConfigEntryResponse, error) {
	caller, err := s.requireAdmin(ctx, "Set", callerEmail)
	if err != nil {
		return nil, err
	}

	key = domain.NormalizeConfigKey(key)
	value := ""
	if req != nil && req.Value != nil {
		value = *req.Value
	}

	if err := s.store.Set(ctx, caller.Scope(), key, value); err != nil {
		return nil, s.storeError("Set", err)
	}
	s.logger.Info("Set: %s updated %s in scope %s", caller.Email, key, caller.Scope())

	current, err := s.store.Get(ctx, caller.Scope(), key)
	if err != nil {
		return nil, s.storeError("Set", err)
	}
	return s.entry(caller, key, current), nil
}

func (s *Service) entry(caller *domain.User, key, value string) *models.ConfigEntryResponse {
	return &models.ConfigEntryResponse{
		Key:         key,
		Value:       value,
		Scope:       domain.ConfigScope(caller.Scope()),
		Overridable: domain.IsOverridableKey(key),
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

func (s *Service) storeError(op string, err error) error {
	if errors.Is(err, configresolver.ErrInvalidInput) {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	s.logger.Error("%s: config store error: %v", op, err)
	return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
}
