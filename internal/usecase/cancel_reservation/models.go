package cancel_reservation

import "github.com/m04kA/SMC-SalonService/internal/domain"

// TokenRequest cancellation through the link sent by email
type TokenRequest struct {
	Token string
	// CallerEmail empty for anonymous callers
	CallerEmail string
	Reason      string
}

// AdminRequest cancellation from the admin panel
type AdminRequest struct {
	ReservationID string
	CallerEmail   string
	Reason        string
}

type Response struct {
	Reservation *domain.Reservation
}
