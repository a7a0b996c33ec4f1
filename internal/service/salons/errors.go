package salons

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrSalonNotFound салон не найден
	ErrSalonNotFound = fmt.Errorf("%w: salon not found", domain.ErrNotFound)

	// ErrAccessDenied caller is not an active admin of the salon's tenant
	ErrAccessDenied = fmt.Errorf("%w: salon management requires an active admin of the salon's tenant", domain.ErrUnauthorized)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("salons.service: internal error")
)
