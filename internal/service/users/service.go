package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/internal/service/users/models"
)

// Service user directory and access requests
type Service struct {
	repo       UserRepository
	identity   IdentityResolver
	recipients AdminRecipients
	notifier   Notifier
	logger     Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(repo UserRepository, identity IdentityResolver, recipients AdminRecipients, notifier Notifier, logger Logger) *Service {
	return &Service{
		repo:       repo,
		identity:   identity,
		recipients: recipients,
		notifier:   notifier,
		logger:     logger,
	}
}

// List all users; general admin only
func (s *Service) List(ctx context.Context, callerEmail string) ([]models.UserResponse, error) {
	if err := s.requireGeneralAdmin(ctx, "List", callerEmail); err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	out := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, models.FromDomain(u))
	}
	return out, nil
}

// Upsert creates or replaces a user keyed by email; general admin only
func (s *Service) Upsert(ctx context.Context, callerEmail string, req *models.UpsertUserRequest) (*models.UpsertUserResponse, error) {
	s.logger.Info("Upsert: %s by %s", req.Email, callerEmail)

	if err := s.requireGeneralAdmin(ctx, "Upsert", callerEmail); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.Priority < 0 {
		return nil, fmt.Errorf("%w: priority must not be negative", ErrInvalidInput)
	}

	_, err := s.repo.GetByEmail(ctx, email)
	created := errors.Is(err, userRepo.ErrUserNotFound)
	if err != nil && !created {
		s.logger.Error("Upsert: failed to load %s: %v", email, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	saved, err := s.repo.Upsert(ctx, &domain.User{
		Email:          email,
		Name:           strings.TrimSpace(req.Name),
		Department:     strings.TrimSpace(req.Department),
		Role:           domain.Role(strings.ToUpper(strings.TrimSpace(req.Role))),
		Priority:       req.Priority,
		SalonWhitelist: domain.ParseSalonWhitelist(req.SalonWhitelist),
		Status:         domain.UserStatus(strings.ToUpper(strings.TrimSpace(req.Status))),
		Extension:      strings.TrimSpace(req.Extension),
		TenantID:       domain.NormalizeTenantID(req.TenantID),
	})
	if err != nil {
		s.logger.Error("Upsert: failed to save %s: %v", email, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	return &models.UpsertUserResponse{User: models.FromDomain(saved), Created: created}, nil
}

// RequestAccess registers (or re-opens) the caller's own row as PENDIENTE and alerts the administrators.
// Role, priority, whitelist and tenant of an existing row are kept.
func (s *Service) RequestAccess(ctx context.Context, callerEmail string, req *models.AccessRequest) (*models.AccessRequestResponse, error) {
	email := strings.ToLower(strings.TrimSpace(callerEmail))
	name := strings.TrimSpace(req.Name)
	department := strings.TrimSpace(req.Department)
	extension := strings.TrimSpace(req.Extension)

	// 1. Валидация
	if email == "" {
		return nil, fmt.Errorf("%w: caller email is required", ErrInvalidInput)
	}
	if name == "" || department == "" || !isDigits(extension) {
		return nil, fmt.Errorf("%w: name, department and a digits-only extension are required", ErrInvalidInput)
	}

	// 2. Ищем существующую запись
	user, err := s.repo.GetByEmail(ctx, email)
	created := errors.Is(err, userRepo.ErrUserNotFound)
	switch {
	case created:
		user = &domain.User{Email: email, TenantID: domain.SuperScope}
	case err != nil:
		s.logger.Error("RequestAccess: failed to load %s: %v", email, err)
		return nil, fmt.Errorf("%w: RequestAccess - repository error: %v", ErrInternal, err)
	}

	user.Name = name
	user.Department = department
	user.Extension = extension
	user.Status = domain.UserStatusPending

	// 3. Сохраняем
	saved, err := s.repo.Upsert(ctx, user)
	if err != nil {
		s.logger.Error("RequestAccess: failed to save %s: %v", email, err)
		return nil, fmt.Errorf("%w: RequestAccess - repository error: %v", ErrInternal, err)
	}

	// 4. Уведомляем администраторов
	s.notifier.AccessRequested(ctx, saved, s.recipients.AdminEmails(ctx, domain.SuperScope))

	s.logger.Info("RequestAccess: %s is now PENDIENTE (created=%t)", email, created)
	return &models.AccessRequestResponse{Created: created}, nil
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

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
