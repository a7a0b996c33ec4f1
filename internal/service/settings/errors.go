package settings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidKey empty key, or a global-only key written by a tenant admin
	ErrInvalidKey = fmt.Errorf("%w: invalid config key", domain.ErrValidation)

	// ErrAccessDenied caller is not an administrator
	ErrAccessDenied = fmt.Errorf("%w: config management requires an administrator", domain.ErrUnauthorized)

	ErrInternal = errors.New("settings.service: internal error")
)
