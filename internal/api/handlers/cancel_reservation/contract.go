package cancel_reservation

import (
	"context"

	cancelReservation "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_reservation"
)

type CancelReservationUseCase interface {
	ExecuteByToken(ctx context.Context, req *cancelReservation.TokenRequest) (*cancelReservation.Response, error)
	ExecuteByAdmin(ctx context.Context, req *cancelReservation.AdminRequest) (*cancelReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
