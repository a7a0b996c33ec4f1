package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
)

// UseCase cancellation by token and by administrator
type UseCase struct {
	reservationRepo ReservationRepository
	identity        IdentityResolver
	notifier        Notifier
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase loc is the timezone reservation dates and times are expressed in
func NewUseCase(
	reservationRepo ReservationRepository,
	identity IdentityResolver,
	notifier Notifier,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		identity:        identity,
		notifier:        notifier,
		location:        loc,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ExecuteByToken anyone holding the token may cancel, at any time
func (uc *UseCase) ExecuteByToken(ctx context.Context, req *TokenRequest) (*Response, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	r, err := uc.reservationRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, uc.lookupError("CancelByToken", err)
	}

	by := strings.ToLower(strings.TrimSpace(req.CallerEmail))
	if by == "" {
		by = domain.PublicCanceller
	}

	return uc.cancel(ctx, "CancelByToken", r, by, reasonOr(req.Reason, domain.ReasonTokenCancellation))
}

// ExecuteByAdmin admins cancel within their tenant; approved rows only up to 30 minutes before the start
func (uc *UseCase) ExecuteByAdmin(ctx context.Context, req *AdminRequest) (*Response, error) {
	id := strings.TrimSpace(req.ReservationID)
	if id == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	// 1. Проверяем права администратора
	caller, err := uc.identity.Resolve(ctx, req.CallerEmail)
	if err != nil {
		uc.logger.Error("CancelByAdmin: failed to resolve caller %s: %v", req.CallerEmail, err)
		return nil, fmt.Errorf("%w: failed to resolve caller: %v", ErrInternal, err)
	}
	if !uc.identity.IsAdmin(ctx, caller) {
		uc.logger.Warn("CancelByAdmin: %s is not an administrator", caller.Email)
		return nil, ErrNotAdmin
	}

	// 2. Получаем резервацию
	r, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, uc.lookupError("CancelByAdmin", err)
	}

	// 3. Область арендатора и сроки
	if !r.VisibleTo(caller.Scope()) {
		uc.logger.Warn("CancelByAdmin: %s (scope %s) cannot cancel id=%s of tenant %s", caller.Email, caller.Scope(), r.ID, r.TenantID)
		return nil, ErrOutOfScope
	}
	if r.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}
	if r.IsApproved() && !r.ChangeWindowOpen(uc.timeProvider.Now().In(uc.location)) {
		uc.logger.Warn("CancelByAdmin: id=%s starts too soon to cancel", r.ID)
		return nil, ErrTooLate
	}

	return uc.cancel(ctx, "CancelByAdmin", r, caller.Email, reasonOr(req.Reason, domain.ReasonAdminCancellation))
}

func (uc *UseCase) cancel(ctx context.Context, op string, r *domain.Reservation, by, reason string) (*Response, error) {
	if r.IsCancelled() {
		uc.logger.Warn("%s: id=%s already cancelled", op, r.ID)
		return nil, ErrAlreadyCancelled
	}

	if err := uc.reservationRepo.Cancel(ctx, r.ID, by, reason); err != nil {
		if errors.Is(err, reservationRepo.ErrStaleState) {
			uc.logger.Warn("%s: id=%s was cancelled concurrently", op, r.ID)
			return nil, ErrAlreadyCancelled
		}
		uc.logger.Error("%s: failed to cancel id=%s: %v", op, r.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
	}

	r.Status = domain.StatusCancelled
	r.CancelledBy = by
	r.CancellationReason = reason

	uc.logger.Info("%s: cancelled id=%s by %s", op, r.ID, by)
	uc.notifier.ReservationCancelled(ctx, r)

	return &Response{Reservation: r}, nil
}

func (uc *UseCase) lookupError(op string, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		uc.logger.Warn("%s: reservation not found", op)
		return ErrReservationNotFound
	}
	uc.logger.Error("%s: failed to get reservation: %v", op, err)
	return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
}

func reasonOr(reason, fallback string) string {
	if s := strings.TrimSpace(reason); s != "" {
		return s
	}
	return fallback
}
