package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
)

// Metric outcomes
const (
	outcomeApproved = "approved"
	outcomePending  = "pending"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// UseCase use case для создания резервации
type UseCase struct {
	reservationRepo ReservationRepository
	salonRepo       SalonRepository
	settings        SettingsResolver
	identity        IdentityResolver
	notifier        Notifier
	metrics         MetricsRecorder
	txManager       TransactionManager
	tokens          TokenGenerator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	salonRepo SalonRepository,
	settings SettingsResolver,
	identity IdentityResolver,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		salonRepo:       salonRepo,
		settings:        settings,
		identity:        identity,
		notifier:        notifier,
		metrics:         metrics,
		txManager:       txManager,
		tokens:          UUIDTokens{},
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации.
// Conflict detection, cascade cancellation and the insert share one serializable
// transaction holding the salon/date lock.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: salon=%s, date=%s, start=%s, duration=%d, requester=%s",
		req.SalonID, req.Date, req.Start, req.DurationMinutes, req.RequesterEmail)

	resp, err := uc.execute(ctx, req)
	uc.observe(resp, err)
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон
	salon, err := uc.salonRepo.GetByID(ctx, strings.TrimSpace(req.SalonID))
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateReservation: salon=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateReservation: failed to get salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	requester, err := uc.identity.Resolve(ctx, req.RequesterEmail)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to resolve requester %s: %v", req.RequesterEmail, err)
		return nil, fmt.Errorf("%w: failed to resolve requester: %v", ErrInternal, err)
	}

	c := &claim{
		salon:       salon,
		settings:    uc.settings.Settings(ctx, salon.TenantID),
		restriction: salon.ParsedRestriction(),
		rawDate:     req.Date,
		start:       req.Start,
		duration:    req.DurationMinutes,
		rawAudience: req.Audience,
		capacity:    req.Capacity,
		prio:        requester.EffectivePriority(salon.ID),
	}

	// 3. Проверки до блокировки, в фиксированном порядке
	if name, err := runGuards(preflightGuards, c); err != nil {
		uc.logger.Warn("CreateReservation: guard %s rejected salon=%s date=%s start=%s: %v", name, salon.ID, req.Date, req.Start, err)
		return nil, err
	}

	var (
		created   *domain.Reservation
		displaced []*domain.Reservation
	)

	// 4. Сериализуемая транзакция с блокировкой салона на дату
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		displaced = nil

		if err := uc.reservationRepo.LockSalonDate(txCtx, salon.ID, c.date); err != nil {
			uc.logger.Error("CreateReservation: failed to lock salon=%s: %v", salon.ID, err)
			return fmt.Errorf("%w: failed to lock salon day: %v", ErrInternal, err)
		}

		statuses := c.restriction.ConflictStatuses()
		existing, err := uc.reservationRepo.ListBySalonDate(txCtx, salon.ID, c.date, statuses)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 4.1. Конфликты и приоритеты
		c.assessment = domain.AssessConflicts(c.interval, existing, statuses, c.prio)
		if name, err := runGuards(conflictGuards, c); err != nil {
			uc.logger.Warn("CreateReservation: guard %s rejected salon=%s %s: %v", name, salon.ID, c.interval, err)
			return err
		}

		// 4.2. Каскадная отмена вытесненных резерваций
		for _, r := range c.assessment.Displaceable() {
			if err := uc.reservationRepo.Cancel(txCtx, r.ID, requester.Email, domain.ReasonCascadeCancellation); err != nil {
				uc.logger.Error("CreateReservation: failed to cancel displaced id=%s: %v", r.ID, err)
				return fmt.Errorf("%w: failed to cancel displaced reservation %s: %v", ErrInternal, r.ID, err)
			}
			cancelled := *r
			cancelled.Status = domain.StatusCancelled
			cancelled.CancelledBy = requester.Email
			cancelled.CancellationReason = domain.ReasonCascadeCancellation
			displaced = append(displaced, &cancelled)
		}

		// 4.3. Новая резервация
		id, err := uc.reservationRepo.NextID(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to allocate id: %v", err)
			return fmt.Errorf("%w: failed to allocate id: %v", ErrInternal, err)
		}

		created, err = uc.reservationRepo.Create(txCtx, uc.buildReservation(id, req, requester, c))
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created id=%s status=%s, displaced %d", created.ID, created.Status, len(displaced))

	// 5. Уведомления после коммита
	uc.notifier.ReservationCreated(ctx, created)
	ids := make([]string, 0, len(displaced))
	for _, r := range displaced {
		uc.notifier.ReservationCancelled(ctx, r)
		ids = append(ids, r.ID)
	}

	return &Response{
		Reservation:      created,
		RequiresApproval: c.restriction.RequiresApproval,
		Displaced:        ids,
	}, nil
}

func (uc *UseCase) buildReservation(id string, req *Request, requester *domain.User, c *claim) *domain.Reservation {
	status := domain.StatusApproved
	if c.restriction.RequiresApproval {
		status = domain.StatusPending
	}

	email := strings.ToLower(strings.TrimSpace(req.ContactEmail))
	if email == "" {
		email = requester.Email
	}

	return &domain.Reservation{
		ID:                id,
		Token:             uc.tokens.NewToken(),
		Status:            status,
		Date:              c.date,
		StartTime:         c.interval.StartTime(),
		EndTime:           c.interval.EndTime(),
		SalonID:           c.salon.ID,
		SalonName:         c.salon.Name,
		Capacity:          req.Capacity,
		RequesterEmail:    email,
		RequesterName:     firstNonEmpty(req.RequesterName, requester.Name),
		Department:        firstNonEmpty(req.Department, requester.Department),
		Extension:         strings.TrimSpace(req.Extension),
		EventName:         strings.TrimSpace(req.EventName),
		Audience:          c.audience,
		Priority:          c.prio,
		ConciergeRequired: c.salon.NeedsConcierge(c.interval),
		TenantID:          domain.NormalizeTenantID(c.salon.TenantID),
	}
}

func (uc *UseCase) observe(resp *Response, err error) {
	switch {
	case err == nil && resp.Reservation.IsPending():
		uc.metrics.ObserveReservation(outcomePending, "")
	case err == nil:
		uc.metrics.ObserveReservation(outcomeApproved, "")
	default:
		if reason, ok := domain.ConflictReasonOf(err); ok {
			uc.metrics.ObserveReservation(outcomeRejected, string(reason))
			return
		}
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
			uc.metrics.ObserveReservation(outcomeRejected, "INVALID")
			return
		}
		uc.metrics.ObserveReservation(outcomeError, "")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

type nopMetrics struct{}

func (nopMetrics) ObserveReservation(string, string) {}
