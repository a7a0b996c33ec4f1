package create_reservation

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание резервации
type Request struct {
	SalonID string
	// Date and Start arrive as typed; they are parsed by the schedule guard, after capacity
	Date            string
	Start           types.TimeString
	DurationMinutes int
	Capacity        int
	EventName       string
	Audience        string

	// RequesterEmail authenticated caller
	RequesterEmail string
	// ContactEmail optional address typed in the form; stored as the requester when present
	ContactEmail  string
	RequesterName string
	Department    string
	Extension     string
}

// Response created reservation and the rows it displaced
type Response struct {
	Reservation      *domain.Reservation
	RequiresApproval bool
	Displaced        []string
}
