package domain

import (
	"errors"
	"fmt"
)

// Error classes surfaced to callers. Use-case errors wrap one of them.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("conflict")
	ErrAlreadyTerminal = errors.New("reservation already cancelled")
)

// ConflictReason tag carried by a ConflictError
type ConflictReason string

const (
	ConflictPendingExists    ConflictReason = "PENDING_EXISTS"
	ConflictSamePriority     ConflictReason = "SAME_PRIORITY"
	ConflictExternalAudience ConflictReason = "EXTERNAL_AUDIENCE"
	ConflictLowPriority      ConflictReason = "LOW_PRIORITY"
	ConflictRestrictedWindow ConflictReason = "RESTRICTED_WINDOW"
	ConflictOutOfHours       ConflictReason = "OUT_OF_HOURS"
)

// ConflictError rejected scheduling decision
type ConflictError struct {
	Reason  ConflictReason
	Message string
}

// NewConflict creates a ConflictError
func NewConflict(reason ConflictReason, format string, args ...interface{}) *ConflictError {
	return &ConflictError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict %s: %s", e.Reason, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ConflictReasonOf extracts the reason tag from err
func ConflictReasonOf(err error) (ConflictReason, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Reason, true
	}
	return "", false
}
