package check_slot

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	ErrInvalidInput  = fmt.Errorf("%w: check_slot: invalid input data", domain.ErrValidation)
	ErrSalonNotFound = fmt.Errorf("%w: check_slot: salon not found", domain.ErrNotFound)
	ErrInternal      = errors.New("check_slot: internal error")
)
