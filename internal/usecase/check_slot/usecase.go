package check_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
)

// UseCase checks a single interval for the requester
type UseCase struct {
	salonRepo       SalonRepository
	reservationRepo ReservationRepository
	settings        SettingsResolver
	identity        IdentityResolver
	logger          Logger
}

func NewUseCase(
	salonRepo SalonRepository,
	reservationRepo ReservationRepository,
	settings SettingsResolver,
	identity IdentityResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		reservationRepo: reservationRepo,
		settings:        settings,
		identity:        identity,
		logger:          logger,
	}
}

// Execute evaluates the interval. Rejections are reported in the response, not as errors.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	salonID := strings.TrimSpace(req.SalonID)
	uc.logger.Info("CheckSlot: salon=%s, date=%s, start=%s, duration=%d",
		salonID, req.Date.Format(domain.DateFormat), req.Start, req.DurationMinutes)

	// 1. Валидация
	if req.Date.IsZero() || salonID == "" {
		return nil, fmt.Errorf("%w: date and salon are required", ErrInvalidInput)
	}
	if err := req.Start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}

	// 2. Салон
	salon, err := uc.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CheckSlot: failed to get salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	settings := uc.settings.Settings(ctx, salon.TenantID)
	iv, err := domain.NewInterval(req.Start, settings.ClampDuration(req.DurationMinutes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	restriction := salon.ParsedRestriction()

	resp := &Response{
		Interval:         iv,
		MaxPriority:      domain.NoPriority,
		RequiresApproval: restriction.RequiresApproval,
		Occupants:        []domain.Occupant{},
	}

	// 3. Рабочие часы и окна ограничений
	if !settings.Window().Contains(iv) || iv.Start > domain.LastStartMinute {
		resp.Reason = domain.ConflictOutOfHours
		return resp, nil
	}
	if restriction.Blocks(iv) {
		resp.Reason = domain.ConflictRestrictedWindow
		return resp, nil
	}

	// 4. Конфликты
	requester, err := uc.identity.Resolve(ctx, req.RequesterEmail)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to resolve requester %s: %v", req.RequesterEmail, err)
		return nil, fmt.Errorf("%w: failed to resolve requester: %v", ErrInternal, err)
	}
	resp.RequesterPrio = requester.EffectivePriority(salon.ID)

	existing, err := uc.reservationRepo.ListBySalonDate(ctx, salon.ID, req.Date, restriction.ConflictStatuses())
	if err != nil {
		uc.logger.Error("CheckSlot: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	a := domain.AssessConflicts(iv, existing, restriction.ConflictStatuses(), resp.RequesterPrio)
	resp.MaxPriority = a.MaxPriority
	resp.Occupants = a.Occupants()

	switch {
	case !a.HasConflict():
		resp.Available = true
	case a.HasPending:
		resp.Reason = domain.ConflictPendingExists
	case resp.RequesterPrio <= 0:
		resp.Reason = domain.ConflictLowPriority
	case a.HasExternal:
		resp.Reason = domain.ConflictExternalAudience
	case a.HasSamePriority:
		resp.Reason = domain.ConflictSamePriority
	case a.CanOverride():
		resp.Available = true
	default:
		resp.Reason = domain.ConflictLowPriority
	}

	return resp, nil
}
