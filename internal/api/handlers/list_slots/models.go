package list_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	listSlots "github.com/m04kA/SMC-SalonService/internal/usecase/list_slots"
)

// SlotResponse один слот
type SlotResponse struct {
	StartTime            string                      `json:"startTime"`
	EndTime              string                      `json:"endTime"`
	Available            bool                        `json:"available"`
	Selectable           bool                        `json:"selectable"`
	HasConflict          bool                        `json:"hasConflict"`
	MaxPriority          int                         `json:"maxPriority"`
	RequiresConciliation bool                        `json:"requiresConciliation"`
	ConciliationReason   string                      `json:"conciliationReason,omitempty"`
	Restricted           bool                        `json:"restricted"`
	RequiresApproval     bool                        `json:"requiresApproval"`
	Label                string                      `json:"label,omitempty"`
	Occupants            []handlers.OccupantResponse `json:"occupants"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date             string         `json:"date"`
	SalonID          string         `json:"salonId"`
	DurationMinutes  int            `json:"durationMinutes"`
	RequiresApproval bool           `json:"requiresApproval"`
	RequesterPrio    int            `json:"requesterPriority"`
	Slots            []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		SalonID:          resp.SalonID,
		DurationMinutes:  resp.DurationMinutes,
		RequiresApproval: resp.RequiresApproval,
		RequesterPrio:    resp.RequesterPrio,
		Slots:            make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:            s.Interval.StartTime().String(),
			EndTime:              s.Interval.EndTime().String(),
			Available:            s.Available,
			Selectable:           s.Selectable,
			HasConflict:          s.HasConflict,
			MaxPriority:          s.MaxPriority,
			RequiresConciliation: s.RequiresConciliation,
			ConciliationReason:   string(s.ConciliationReason),
			Restricted:           s.Restricted,
			RequiresApproval:     s.RequiresApproval,
			Label:                s.Label(),
			Occupants:            handlers.OccupantsFromDomain(s.Occupants),
		})
	}
	return out
}
