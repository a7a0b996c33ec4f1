package create_reservation

import (
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SalonID         string `json:"salonId" validate:"required"`
	Date            string `json:"date" validate:"required"`      // "2026-03-09"
	StartTime       string `json:"startTime" validate:"required"` // "10:00"
	DurationMinutes int    `json:"durationMinutes" validate:"gte=0"`
	Capacity        int    `json:"capacity"`
	EventName       string `json:"eventName"`
	Audience        string `json:"audience"`
	ContactEmail    string `json:"contactEmail" validate:"omitempty,email"`
	RequesterName   string `json:"requesterName"`
	Department      string `json:"department"`
	Extension       string `json:"extension"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation      *models.ReservationResponse `json:"reservation"`
	RequiresApproval bool                        `json:"requiresApproval"`
	Displaced        []string                    `json:"displaced"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Date and time formats are checked by the use case, after the salon and capacity.
func (r *CreateReservationRequest) ToUseCaseRequest(callerEmail string) *createReservation.Request {
	return &createReservation.Request{
		SalonID:         r.SalonID,
		Date:            strings.TrimSpace(r.Date),
		Start:           types.TimeString(strings.TrimSpace(r.StartTime)),
		DurationMinutes: r.DurationMinutes,
		Capacity:        r.Capacity,
		EventName:       r.EventName,
		Audience:        r.Audience,
		RequesterEmail:  callerEmail,
		ContactEmail:    r.ContactEmail,
		RequesterName:   r.RequesterName,
		Department:      r.Department,
		Extension:       r.Extension,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	displaced := resp.Displaced
	if displaced == nil {
		displaced = []string{}
	}
	return &CreateReservationResponse{
		Reservation:      models.FromDomain(resp.Reservation),
		RequiresApproval: resp.RequiresApproval,
		Displaced:        displaced,
	}
}
