package create_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_reservation: invalid input data", domain.ErrValidation)

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = fmt.Errorf("%w: create_reservation: salon not found", domain.ErrNotFound)

	// ErrSalonDisabled salon temporarily closed for reservations
	ErrSalonDisabled = fmt.Errorf("%w: create_reservation: salon is disabled", domain.ErrValidation)

	// ErrInvalidCapacity attendee count missing or above the salon capacity
	ErrInvalidCapacity = fmt.Errorf("%w: create_reservation: invalid attendee count", domain.ErrValidation)

	// ErrInvalidDate date is not YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrInvalidInput)

	// ErrInvalidTime start is not HH:MM
	ErrInvalidTime = fmt.Errorf("%w: invalid start time", ErrInvalidInput)

	// ErrInvalidAudience audience outside INTERNO/EXTERNO/MIXTO
	ErrInvalidAudience = fmt.Errorf("%w: invalid audience", ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
