package salons

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/salons/models"
)

type SalonService interface {
	List(ctx context.Context) ([]models.SalonResponse, error)
	ListAdmin(ctx context.Context, callerEmail string) (*models.AdminSalonsResponse, error)
	Toggle(ctx context.Context, callerEmail, id string, enabled bool) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
