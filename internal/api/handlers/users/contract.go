package users

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context, callerEmail string) ([]models.UserResponse, error)
	Upsert(ctx context.Context, callerEmail string, req *models.UpsertUserRequest) (*models.UpsertUserResponse, error)
	RequestAccess(ctx context.Context, callerEmail string, req *models.AccessRequest) (*models.AccessRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
