package notification

import "errors"

var (
	// ErrNoRecipients message has no destination
	ErrNoRecipients = errors.New("notification: no recipients")

	// ErrRender template execution failed
	ErrRender = errors.New("notification: failed to render template")

	// ErrSend transport failure
	ErrSend = errors.New("notification: failed to send")
)
