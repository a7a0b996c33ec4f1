package approve_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	ErrInvalidInput        = fmt.Errorf("%w: approve_reservation: invalid input data", domain.ErrValidation)
	ErrReservationNotFound = fmt.Errorf("%w: approve_reservation: reservation not found", domain.ErrNotFound)
	ErrAlreadyCancelled    = fmt.Errorf("%w: approve_reservation: reservation already cancelled", domain.ErrAlreadyTerminal)
	ErrNotAdmin            = fmt.Errorf("%w: approve_reservation: administrator access required", domain.ErrUnauthorized)
	ErrOutOfScope          = fmt.Errorf("%w: approve_reservation: reservation outside the caller's tenant", domain.ErrUnauthorized)
	ErrInternal            = errors.New("approve_reservation: internal error")
)
