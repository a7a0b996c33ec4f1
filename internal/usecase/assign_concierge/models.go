package assign_concierge

import "github.com/m04kA/SMC-SalonService/internal/domain"

type Request struct {
	ReservationID string
	ConciergeCode string
	CallerEmail   string
}

type Response struct {
	Reservation *domain.Reservation
	Concierge   *domain.Concierge
}
