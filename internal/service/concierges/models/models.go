package models

import "github.com/m04kA/SMC-SalonService/internal/domain"

// ConciergeResponse консьерж
type ConciergeResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

// AddConciergeRequest запрос на добавление консьержа
type AddConciergeRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// UpdateConciergeRequest partial update; absent fields stay unchanged
type UpdateConciergeRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// UpdateConciergeResponse result of a partial update
type UpdateConciergeResponse struct {
	Concierge ConciergeResponse `json:"concierge"`
	Changed   bool              `json:"changed"`
}

// FromDomain конвертирует domain.Concierge в ConciergeResponse
func FromDomain(c *domain.Concierge) ConciergeResponse {
	return ConciergeResponse{
		Code:   c.Code,
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Active: c.Active,
	}
}
