package list_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
)

// UseCase use case для получения слотов салона на день
type UseCase struct {
	salonRepo       SalonRepository
	reservationRepo ReservationRepository
	settings        SettingsResolver
	identity        IdentityResolver
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
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

// Execute classifies every candidate slot of the salon day for the requester.
// An unknown salon yields an empty list.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	salonID := strings.TrimSpace(req.SalonID)
	uc.logger.Info("ListSlots: salon=%s, date=%s, duration=%d, requester=%s",
		salonID, req.Date.Format(domain.DateFormat), req.DurationMinutes, req.RequesterEmail)

	// 1. Валидация входных данных
	if req.Date.IsZero() || salonID == "" {
		return nil, fmt.Errorf("%w: date and salon are required", ErrInvalidInput)
	}

	resp := &Response{Date: req.Date, SalonID: salonID, Slots: []domain.Slot{}}

	// 2. Получаем салон
	salon, err := uc.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("ListSlots: salon=%s not found, returning no slots", salonID)
			return resp, nil
		}
		uc.logger.Error("ListSlots: failed to get salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 3. Настройки арендатора и длительность
	settings := uc.settings.Settings(ctx, salon.TenantID)
	resp.DurationMinutes = settings.ClampDuration(req.DurationMinutes)

	restriction := salon.ParsedRestriction()
	resp.RequiresApproval = restriction.RequiresApproval

	intervals := generateIntervals(settings, resp.DurationMinutes)
	if len(intervals) == 0 {
		return resp, nil
	}

	// 4. Приоритет запрашивающего для этого салона
	requester, err := uc.identity.Resolve(ctx, req.RequesterEmail)
	if err != nil {
		uc.logger.Error("ListSlots: failed to resolve requester %s: %v", req.RequesterEmail, err)
		return nil, fmt.Errorf("%w: failed to resolve requester: %v", ErrInternal, err)
	}
	resp.RequesterPrio = requester.EffectivePriority(salon.ID)

	// 5. Резервации дня
	existing, err := uc.reservationRepo.ListBySalonDate(ctx, salon.ID, req.Date, restriction.ConflictStatuses())
	if err != nil {
		uc.logger.Error("ListSlots: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 6. Классифицируем слоты
	resp.Slots = make([]domain.Slot, 0, len(intervals))
	for _, iv := range intervals {
		resp.Slots = append(resp.Slots, domain.ClassifySlot(iv, restriction, existing, resp.RequesterPrio))
	}

	uc.logger.Info("ListSlots: %d slots for salon=%s on %s", len(resp.Slots), salon.ID, req.Date.Format(domain.DateFormat))
	return resp, nil
}
