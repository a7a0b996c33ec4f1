package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service read side of reservations
type Service struct {
	reservationRepo ReservationRepository
	conciergeRepo   ConciergeRepository
	identity        IdentityResolver
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	reservationRepo ReservationRepository,
	conciergeRepo ConciergeRepository,
	identity IdentityResolver,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		conciergeRepo:   conciergeRepo,
		identity:        identity,
		logger:          logger,
	}
}

// GetByToken lookup behind the public cancellation page
func (s *Service) GetByToken(ctx context.Context, token string) (*models.ReservationResponse, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	r, err := s.reservationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByToken: reservation not found")
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByToken - repository error: %v", ErrInternal, err)
	}
	return models.FromDomain(r), nil
}

// ListMine reservations requested by the caller within the range
func (s *Service) ListMine(ctx context.Context, callerEmail string, req models.ListRequest) (*models.ReservationListResponse, error) {
	email := strings.ToLower(strings.TrimSpace(callerEmail))
	s.logger.Info("ListMine: %s, from=%q to=%q", email, req.From, req.To)

	if email == "" {
		return nil, fmt.Errorf("%w: caller email is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter.RequesterEmail = ptr.Ptr(email)

	return s.list(ctx, "ListMine", filter)
}

// ListAdmin reservations within the range visible to the admin's scope
func (s *Service) ListAdmin(ctx context.Context, callerEmail string, req models.ListRequest) (*models.ReservationListResponse, error) {
	caller, err := s.identity.Resolve(ctx, callerEmail)
	if err != nil || !s.identity.IsAdmin(ctx, caller) {
		s.logger.Warn("ListAdmin: %s is not an admin", callerEmail)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter.TenantID = ptr.Ptr(caller.Scope())

	s.logger.Info("ListAdmin: %s (scope %s), from=%q to=%q", caller.Email, caller.Scope(), req.From, req.To)
	return s.list(ctx, "ListAdmin", filter)
}

func (s *Service) list(ctx context.Context, op string, filter domain.ReservationFilter) (*models.ReservationListResponse, error) {
	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return models.FromDomainList(list, s.conciergeNames(ctx, op)), nil
}

// conciergeNames active concierges only; a failed lookup degrades to no names
func (s *Service) conciergeNames(ctx context.Context, op string) map[string]string {
	names := make(map[string]string)
	list, err := s.conciergeRepo.List(ctx)
	if err != nil {
		s.logger.Warn("%s: concierge names unavailable: %v", op, err)
		return names
	}
	for _, c := range list {
		if c.Active {
			names[c.Code] = c.Name
		}
	}
	return names
}
