package handlers

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// OccupantResponse reservation holding part of a slot
type OccupantResponse struct {
	ReservationID  string `json:"reservationId"`
	Priority       int    `json:"priority"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterName  string `json:"requesterName"`
	EventName      string `json:"eventName"`
	Audience       string `json:"audience"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
}

// OccupantsFromDomain always returns a non-nil slice so the JSON is [] rather than null
func OccupantsFromDomain(list []domain.Occupant) []OccupantResponse {
	out := make([]OccupantResponse, 0, len(list))
	for _, o := range list {
		out = append(out, OccupantResponse{
			ReservationID:  o.ReservationID,
			Priority:       o.Priority,
			RequesterEmail: o.RequesterEmail,
			RequesterName:  o.RequesterName,
			EventName:      o.EventName,
			Audience:       string(o.Audience),
			StartTime:      o.Interval.StartTime().String(),
			EndTime:        o.Interval.EndTime().String(),
			Status:         string(o.Status),
		})
	}
	return out
}
