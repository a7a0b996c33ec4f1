package assign_concierge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	conciergeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/concierge"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
)

// UseCase assigns (or reassigns) a concierge to an approved reservation
type UseCase struct {
	reservationRepo ReservationRepository
	conciergeRepo   ConciergeRepository
	identity        IdentityResolver
	notifier        Notifier
	txManager       TransactionManager
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	conciergeRepo ConciergeRepository,
	identity IdentityResolver,
	notifier Notifier,
	txManager TransactionManager,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		conciergeRepo:   conciergeRepo,
		identity:        identity,
		notifier:        notifier,
		txManager:       txManager,
		location:        loc,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute the overlap check and the write share one transaction holding the concierge/date lock
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	id := strings.TrimSpace(req.ReservationID)
	code := strings.ToUpper(strings.TrimSpace(req.ConciergeCode))
	uc.logger.Info("AssignConcierge: reservation=%s, concierge=%s, caller=%s", id, code, req.CallerEmail)

	// 1. Валидация входных данных
	if id == "" || code == "" {
		return nil, fmt.Errorf("%w: reservation id and concierge code are required", ErrInvalidInput)
	}

	// 2. Права администратора
	caller, err := uc.identity.Resolve(ctx, req.CallerEmail)
	if err != nil {
		uc.logger.Error("AssignConcierge: failed to resolve caller %s: %v", req.CallerEmail, err)
		return nil, fmt.Errorf("%w: failed to resolve caller: %v", ErrInternal, err)
	}
	if !uc.identity.IsAdmin(ctx, caller) {
		uc.logger.Warn("AssignConcierge: %s is not an administrator", caller.Email)
		return nil, ErrNotAdmin
	}

	// 3. Резервация
	r, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("AssignConcierge: failed to get reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	if err := uc.checkReservation(caller, r); err != nil {
		uc.logger.Warn("AssignConcierge: reservation id=%s rejected: %v", r.ID, err)
		return nil, err
	}

	// 4. Консьерж
	concierge, err := uc.conciergeRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, conciergeRepo.ErrConciergeNotFound) {
			return nil, ErrConciergeNotFound
		}
		uc.logger.Error("AssignConcierge: failed to get concierge=%s: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get concierge: %v", ErrInternal, err)
	}
	if !concierge.Active {
		return nil, ErrConciergeInactive
	}

	// 5. Проверка пересечений и запись под блокировкой
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.reservationRepo.LockConciergeDate(txCtx, concierge.Code, r.Date); err != nil {
			uc.logger.Error("AssignConcierge: failed to lock concierge=%s: %v", concierge.Code, err)
			return fmt.Errorf("%w: failed to lock concierge day: %v", ErrInternal, err)
		}

		assigned, err := uc.reservationRepo.ListByConciergeDate(txCtx, concierge.Code, r.Date, []domain.ReservationStatus{domain.StatusApproved})
		if err != nil {
			uc.logger.Error("AssignConcierge: failed to list concierge reservations: %v", err)
			return fmt.Errorf("%w: failed to list concierge reservations: %v", ErrInternal, err)
		}
		for _, other := range assigned {
			if other.ID != r.ID && other.Interval().Overlaps(r.Interval()) {
				uc.logger.Warn("AssignConcierge: concierge=%s busy with id=%s", concierge.Code, other.ID)
				return ErrConciergeBusy
			}
		}

		if err := uc.reservationRepo.AssignConcierge(txCtx, r.ID, concierge.Code); err != nil {
			if errors.Is(err, reservationRepo.ErrStaleState) {
				return ErrNotApproved
			}
			uc.logger.Error("AssignConcierge: failed to assign id=%s: %v", r.ID, err)
			return fmt.Errorf("%w: failed to assign concierge: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.ConciergeCode = concierge.Code
	uc.logger.Info("AssignConcierge: concierge=%s assigned to id=%s", concierge.Code, r.ID)

	// Ошибка отправки письма не отменяет назначение
	uc.notifier.ConciergeAssigned(ctx, r, concierge)

	return &Response{Reservation: r, Concierge: concierge}, nil
}

func (uc *UseCase) checkReservation(caller *domain.User, r *domain.Reservation) error {
	if !r.VisibleTo(caller.Scope()) {
		return ErrOutOfScope
	}
	if !r.IsApproved() {
		return ErrNotApproved
	}
	if !r.ChangeWindowOpen(uc.timeProvider.Now().In(uc.location)) {
		return ErrTooLate
	}
	if !r.ConciergeRequired {
		return ErrNotRequired
	}
	return nil
}
