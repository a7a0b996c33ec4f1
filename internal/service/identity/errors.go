package identity

import "errors"

var (
	// ErrMissingEmail caller identity is required
	ErrMissingEmail = errors.New("identity: caller email is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("identity: internal error")
)
