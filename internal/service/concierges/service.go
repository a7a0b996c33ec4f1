package concierges

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	conciergeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/concierge"
	"github.com/m04kA/SMC-SalonService/internal/service/concierges/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service concierge roster
type Service struct {
	repo     ConciergeRepository
	identity IdentityResolver
	logger   Logger
}

// NewService создает новый экземпляр сервиса консьержей
func NewService(repo ConciergeRepository, identity IdentityResolver, logger Logger) *Service {
	return &Service{
		repo:     repo,
		identity: identity,
		logger:   logger,
	}
}

// List every concierge, inactive ones included; any admin
func (s *Service) List(ctx context.Context, callerEmail string) ([]models.ConciergeResponse, error) {
	caller, err := s.identity.Resolve(ctx, callerEmail)
	if err != nil || !s.identity.IsAdmin(ctx, caller) {
		s.logger.Warn("List: %s is not an admin", callerEmail)
		return nil, ErrAccessDenied
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	out := make([]models.ConciergeResponse, 0, len(list))
	for _, c := range list {
		out = append(out, models.FromDomain(c))
	}
	return out, nil
}

// Add registers an active concierge with the next C-00001 code
func (s *Service) Add(ctx context.Context, callerEmail string, req *models.AddConciergeRequest) (*models.ConciergeResponse, error) {
	if err := s.requireGeneralAdmin(ctx, "Add", callerEmail); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Concierge{
		Name:   name,
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:  strings.TrimSpace(req.Phone),
		Active: true,
	})
	if err != nil {
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: concierge %s created by %s", created.Code, callerEmail)
	resp := models.FromDomain(created)
	return &resp, nil
}

// Update applies the present fields; changed is false when nothing differs
func (s *Service) Update(ctx context.Context, callerEmail, code string, req *models.UpdateConciergeRequest) (*models.UpdateConciergeResponse, error) {
	if err := s.requireGeneralAdmin(ctx, "Update", callerEmail); err != nil {
		return nil, err
	}

	update := domain.ConciergeUpdate{Name: req.Name, Phone: req.Phone, Active: req.Active}
	if req.Email != nil {
		update.Email = ptr.Ptr(strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	return s.apply(ctx, "Update", code, update)
}

// Delete logical delete: the row stays, active becomes false
func (s *Service) Delete(ctx context.Context, callerEmail, code string) error {
	if err := s.requireGeneralAdmin(ctx, "Delete", callerEmail); err != nil {
		return err
	}
	_, err := s.apply(ctx, "Delete", code, domain.ConciergeUpdate{Active: ptr.Ptr(false)})
	return err
}

func (s *Service) apply(ctx context.Context, op, code string, update domain.ConciergeUpdate) (*models.UpdateConciergeResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	current, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, conciergeRepo.ErrConciergeNotFound) {
			return nil, ErrConciergeNotFound
		}
		s.logger.Error("%s: failed to load concierge %s: %v", op, code, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	next, changed := current.Apply(update)
	if changed {
		if err := s.repo.Update(ctx, &next); err != nil {
			if errors.Is(err, conciergeRepo.ErrConciergeNotFound) {
				return nil, ErrConciergeNotFound
			}
			s.logger.Error("%s: failed to update concierge %s: %v", op, code, err)
			return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
		s.logger.Info("%s: concierge %s updated", op, code)
	}

	return &models.UpdateConciergeResponse{Concierge: models.FromDomain(&next), Changed: changed}, nil
}

func (s *Service) requireGeneralAdmin(ctx context.Context, op, callerEmail string) error {
	caller, err := s.identity.Resolve(ctx, callerEmail)
	if err != nil {
		return fmt.Errorf("%w: %s - %v", ErrAccessDenied, op, err)
	}
	if !caller.IsGeneralAdmin() || !s.identity.IsAdmin(ctx, caller) {
		s.logger.Warn("%s: %s is not the general admin", op, callerEmail)
		return ErrAccessDenied
	}
	return nil
}
