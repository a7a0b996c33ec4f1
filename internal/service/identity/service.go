package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
)

// Service resolves the caller's stored profile and administrative rights
type Service struct {
	userRepo UserRepository
	config   ConfigResolver
	logger   Logger
}

// NewService создает новый экземпляр сервиса
func NewService(userRepo UserRepository, config ConfigResolver, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		config:   config,
		logger:   logger,
	}
}

// Resolve stored user of email; an unknown email yields a non-existent user with priority 0 in scope "1"
func (s *Service) Resolve(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrMissingEmail
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return domain.AnonymousUser(email), nil
	}
	if err != nil {
		s.logger.Error("Resolve: failed to load user %s: %v", email, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}
	return user, nil
}

// IsAdmin ADMIN+ACTIVO, or an ACTIVO user listed in the global ADMIN_EMAILS
func (s *Service) IsAdmin(ctx context.Context, user *domain.User) bool {
	if user == nil || !user.Exists {
		return false
	}
	if user.IsActiveAdmin() {
		return true
	}
	if !user.IsActive() {
		return false
	}
	for _, e := range domain.ParseEmailList(s.config.Resolve(ctx, domain.SuperScope, domain.KeyAdminEmails)) {
		if e == strings.ToLower(user.Email) {
			return true
		}
	}
	return false
}
