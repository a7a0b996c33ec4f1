package concierge

import "errors"

var (
	// ErrConciergeNotFound возвращается, когда консьерж не найден
	ErrConciergeNotFound = errors.New("concierge.repository: concierge not found")

	ErrBuildQuery = errors.New("concierge.repository: failed to build query")
	ErrExecQuery  = errors.New("concierge.repository: failed to execute query")
	ErrScanRow    = errors.New("concierge.repository: failed to scan row")
)
