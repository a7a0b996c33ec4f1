package salon

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon.repository: salon not found")

	ErrBuildQuery = errors.New("salon.repository: failed to build query")
	ErrExecQuery  = errors.New("salon.repository: failed to execute query")
	ErrScanRow    = errors.New("salon.repository: failed to scan row")
)
