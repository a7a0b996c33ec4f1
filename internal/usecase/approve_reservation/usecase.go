package approve_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
)

// UseCase approval of pending reservations
type UseCase struct {
	reservationRepo ReservationRepository
	identity        IdentityResolver
	notifier        Notifier
	logger          Logger
}

func NewUseCase(reservationRepo ReservationRepository, identity IdentityResolver, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		identity:        identity,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute approving an approved reservation is a successful no-op
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	id := strings.TrimSpace(req.ReservationID)
	if id == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}
	uc.logger.Info("ApproveReservation: id=%s, caller=%s", id, req.CallerEmail)

	caller, err := uc.identity.Resolve(ctx, req.CallerEmail)
	if err != nil {
		uc.logger.Error("ApproveReservation: failed to resolve caller %s: %v", req.CallerEmail, err)
		return nil, fmt.Errorf("%w: failed to resolve caller: %v", ErrInternal, err)
	}
	if !uc.identity.IsAdmin(ctx, caller) {
		uc.logger.Warn("ApproveReservation: %s is not an administrator", caller.Email)
		return nil, ErrNotAdmin
	}

	r, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.VisibleTo(caller.Scope()) {
		uc.logger.Warn("ApproveReservation: %s (scope %s) cannot approve id=%s of tenant %s", caller.Email, caller.Scope(), r.ID, r.TenantID)
		return nil, ErrOutOfScope
	}

	switch r.Status {
	case domain.StatusCancelled:
		return nil, ErrAlreadyCancelled
	case domain.StatusApproved:
		return &Response{Reservation: r, AlreadyApproved: true}, nil
	}

	if err := uc.reservationRepo.Approve(ctx, r.ID); err != nil {
		if !errors.Is(err, reservationRepo.ErrStaleState) {
			uc.logger.Error("ApproveReservation: failed to approve id=%s: %v", r.ID, err)
			return nil, fmt.Errorf("%w: failed to approve reservation: %v", ErrInternal, err)
		}

		// Состояние изменилось между чтением и записью
		current, err := uc.get(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		if current.IsApproved() {
			return &Response{Reservation: current, AlreadyApproved: true}, nil
		}
		uc.logger.Warn("ApproveReservation: id=%s changed to %s concurrently", r.ID, current.Status)
		return nil, ErrAlreadyCancelled
	}

	r.Status = domain.StatusApproved
	uc.logger.Info("ApproveReservation: approved id=%s", r.ID)
	uc.notifier.ReservationApproved(ctx, r)

	return &Response{Reservation: r}, nil
}

func (uc *UseCase) get(ctx context.Context, id string) (*domain.Reservation, error) {
	r, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("ApproveReservation: failed to get id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	return r, nil
}
