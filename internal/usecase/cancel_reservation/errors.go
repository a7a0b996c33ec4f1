package cancel_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	ErrInvalidInput = fmt.Errorf("%w: cancel_reservation: invalid input data", domain.ErrValidation)

	// ErrReservationNotFound unknown id or token
	ErrReservationNotFound = fmt.Errorf("%w: cancel_reservation: reservation not found", domain.ErrNotFound)

	// ErrAlreadyCancelled reservation is in its terminal state
	ErrAlreadyCancelled = fmt.Errorf("%w: cancel_reservation: reservation already cancelled", domain.ErrAlreadyTerminal)

	// ErrNotAdmin caller is not an administrator
	ErrNotAdmin = fmt.Errorf("%w: cancel_reservation: administrator access required", domain.ErrUnauthorized)

	// ErrOutOfScope reservation belongs to another tenant
	ErrOutOfScope = fmt.Errorf("%w: cancel_reservation: reservation outside the caller's tenant", domain.ErrUnauthorized)

	// ErrTooLate approved reservations close for cancellation 30 minutes before the start
	ErrTooLate = fmt.Errorf("%w: cancel_reservation: approved reservations can only be cancelled up to 30 minutes before the start", domain.ErrValidation)

	ErrInternal = errors.New("cancel_reservation: internal error")
)
