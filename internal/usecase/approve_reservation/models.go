package approve_reservation

import "github.com/m04kA/SMC-SalonService/internal/domain"

type Request struct {
	ReservationID string
	CallerEmail   string
}

type Response struct {
	Reservation *domain.Reservation
	// AlreadyApproved the reservation was approved before this call; nothing changed
	AlreadyApproved bool
}
