package reservation

import "errors"

var (
	// ErrReservationNotFound no row for the id or token
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrStaleState the row left the expected state between read and write
	ErrStaleState = errors.New("reservation.repository: reservation state changed concurrently")

	// ErrLockOutsideTx advisory locks are transaction scoped
	ErrLockOutsideTx = errors.New("reservation.repository: lock requested outside a transaction")

	ErrBuildQuery = errors.New("reservation.repository: failed to build query")
	ErrExecQuery  = errors.New("reservation.repository: failed to execute query")
	ErrScanRow    = errors.New("reservation.repository: failed to scan row")
)
