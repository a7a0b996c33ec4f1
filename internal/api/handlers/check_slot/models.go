package check_slot

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	checkSlot "github.com/m04kA/SMC-SalonService/internal/usecase/check_slot"
)

// CheckSlotResponse verdict for one interval
type CheckSlotResponse struct {
	Available        bool                        `json:"available"`
	Reason           string                      `json:"reason,omitempty"`
	StartTime        string                      `json:"startTime"`
	EndTime          string                      `json:"endTime"`
	MaxPriority      int                         `json:"maxPriority"`
	RequesterPrio    int                         `json:"requesterPriority"`
	RequiresApproval bool                        `json:"requiresApproval"`
	Occupants        []handlers.OccupantResponse `json:"occupants"`
}

func FromUseCaseResponse(resp *checkSlot.Response) *CheckSlotResponse {
	return &CheckSlotResponse{
		Available:        resp.Available,
		Reason:           string(resp.Reason),
		StartTime:        resp.Interval.StartTime().String(),
		EndTime:          resp.Interval.EndTime().String(),
		MaxPriority:      resp.MaxPriority,
		RequesterPrio:    resp.RequesterPrio,
		RequiresApproval: resp.RequiresApproval,
		Occupants:        handlers.OccupantsFromDomain(resp.Occupants),
	}
}
