package concierges

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/concierges/models"
)

type ConciergeService interface {
	List(ctx context.Context, callerEmail string) ([]models.ConciergeResponse, error)
	Add(ctx context.Context, callerEmail string, req *models.AddConciergeRequest) (*models.ConciergeResponse, error)
	Update(ctx context.Context, callerEmail, code string, req *models.UpdateConciergeRequest) (*models.UpdateConciergeResponse, error)
	Delete(ctx context.Context, callerEmail, code string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
