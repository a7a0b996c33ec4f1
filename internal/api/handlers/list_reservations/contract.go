package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

type ReservationService interface {
	ListMine(ctx context.Context, callerEmail string, req models.ListRequest) (*models.ReservationListResponse, error)
	ListAdmin(ctx context.Context, callerEmail string, req models.ListRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
