package assign_concierge

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	ErrInvalidInput        = fmt.Errorf("%w: assign_concierge: invalid input data", domain.ErrValidation)
	ErrReservationNotFound = fmt.Errorf("%w: assign_concierge: reservation not found", domain.ErrNotFound)
	ErrConciergeNotFound   = fmt.Errorf("%w: assign_concierge: concierge not found", domain.ErrNotFound)
	ErrNotAdmin            = fmt.Errorf("%w: assign_concierge: administrator access required", domain.ErrUnauthorized)
	ErrOutOfScope          = fmt.Errorf("%w: assign_concierge: reservation outside the caller's tenant", domain.ErrUnauthorized)

	// ErrNotApproved only approved reservations get a concierge
	ErrNotApproved = fmt.Errorf("%w: assign_concierge: reservation is not approved", domain.ErrValidation)

	// ErrTooLate assignment closes 30 minutes before the start
	ErrTooLate = fmt.Errorf("%w: assign_concierge: assignment closes 30 minutes before the start", domain.ErrValidation)

	// ErrNotRequired reservation does not need concierge support
	ErrNotRequired = fmt.Errorf("%w: assign_concierge: reservation does not require a concierge", domain.ErrValidation)

	ErrConciergeInactive = fmt.Errorf("%w: assign_concierge: concierge is inactive", domain.ErrValidation)

	// ErrConciergeBusy concierge already assigned to an overlapping approved reservation
	ErrConciergeBusy = fmt.Errorf("%w: assign_concierge: concierge already assigned in that interval", domain.ErrConflict)

	ErrInternal = errors.New("assign_concierge: internal error")
)
