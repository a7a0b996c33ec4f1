package cancel_reservation

import (
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
	cancelReservation "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest optional body
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// FromUseCaseResponse cancelled reservation without its token
func FromUseCaseResponse(resp *cancelReservation.Response) *models.ReservationResponse {
	out := models.FromDomain(resp.Reservation)
	out.Token = ""
	return out
}
