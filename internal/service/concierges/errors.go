package concierges

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrConciergeNotFound консьерж не найден
	ErrConciergeNotFound = fmt.Errorf("%w: concierge not found", domain.ErrNotFound)

	// ErrAccessDenied caller lacks the required admin rights
	ErrAccessDenied = fmt.Errorf("%w: concierge management requires admin rights", domain.ErrUnauthorized)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid concierge data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("concierges.service: internal error")
)
