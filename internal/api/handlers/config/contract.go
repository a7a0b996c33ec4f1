package config

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

type ConfigService interface {
	Get(ctx context.Context, callerEmail, key string) (*models.ConfigEntryResponse, error)
	Set(ctx context.Context, callerEmail, key string, req *models.SetConfigRequest) (*models.ConfigEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
