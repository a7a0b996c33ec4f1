package assign_concierge

import (
	"context"

	assignConcierge "github.com/m04kA/SMC-SalonService/internal/usecase/assign_concierge"
)

type AssignConciergeUseCase interface {
	Execute(ctx context.Context, req *assignConcierge.Request) (*assignConcierge.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
