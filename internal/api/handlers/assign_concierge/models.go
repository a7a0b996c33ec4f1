package assign_concierge

import (
	conciergeModels "github.com/m04kA/SMC-SalonService/internal/service/concierges/models"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
	assignConcierge "github.com/m04kA/SMC-SalonService/internal/usecase/assign_concierge"
)

// AssignConciergeRequest HTTP request model
type AssignConciergeRequest struct {
	ConciergeCode string `json:"conciergeCode" validate:"required"`
}

// AssignConciergeResponse HTTP response model
type AssignConciergeResponse struct {
	Reservation *models.ReservationResponse       `json:"reservation"`
	Concierge   conciergeModels.ConciergeResponse `json:"concierge"`
}

func FromUseCaseResponse(resp *assignConcierge.Response) *AssignConciergeResponse {
	out := &AssignConciergeResponse{
		Reservation: models.FromDomain(resp.Reservation),
		Concierge:   conciergeModels.FromDomain(resp.Concierge),
	}
	out.Reservation.ConciergeName = resp.Concierge.Name
	return out
}
