package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UserResponse stored user
type UserResponse struct {
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	Department     string   `json:"department"`
	Role           string   `json:"role"`
	Priority       int      `json:"priority"`
	SalonWhitelist string   `json:"salonWhitelist"`
	SalonList      []string `json:"salonWhitelistList"`
	Status         string   `json:"status"`
	Extension      string   `json:"extension"`
	TenantID       string   `json:"tenantId"`
}

// UpsertUserRequest запрос на создание/обновление пользователя
type UpsertUserRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	Role           string `json:"role" validate:"omitempty,oneof=SOLICITANTE ADMIN solicitante admin"`
	Priority       int    `json:"priority" validate:"gte=0"`
	SalonWhitelist string `json:"salonWhitelist"`
	Status         string `json:"status" validate:"omitempty,oneof=PENDIENTE ACTIVO INACTIVO pendiente activo inactivo"`
	Extension      string `json:"extension"`
	TenantID       string `json:"tenantId"`
}

// UpsertUserResponse result of an upsert
type UpsertUserResponse struct {
	User    UserResponse `json:"user"`
	Created bool         `json:"created"`
}

// AccessRequest запрос на доступ к системе
type AccessRequest struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Extension  string `json:"extension" validate:"required,numeric"`
}

// AccessRequestResponse result of an access request
type AccessRequestResponse struct {
	Created bool `json:"created"`
}

// FromDomain конвертирует domain.User в UserResponse
func FromDomain(u *domain.User) UserResponse {
	list := u.SalonWhitelist
	if list == nil {
		list = []string{}
	}
	return UserResponse{
		Email:          u.Email,
		Name:           u.Name,
		Department:     u.Department,
		Role:           string(u.Role),
		Priority:       u.Priority,
		SalonWhitelist: domain.JoinSalonWhitelist(u.SalonWhitelist),
		SalonList:      list,
		Status:         string(u.Status),
		Extension:      u.Extension,
		TenantID:       domain.NormalizeTenantID(u.TenantID),
	}
}
