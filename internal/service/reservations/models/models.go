package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ErrInvalidDate date not in YYYY-MM-DD form
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ListRequest date range filter; empty bounds are open
type ListRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r ListRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	var filter domain.ReservationFilter
	if v := strings.TrimSpace(r.From); v != "" {
		d, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.From = &d
	}
	if v := strings.TrimSpace(r.To); v != "" {
		d, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.To = &d
	}
	return filter, nil
}

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID                 string    `json:"id"`
	Token              string    `json:"token,omitempty"`
	Status             string    `json:"status"`
	Date               string    `json:"date"`      // "2026-03-09"
	StartTime          string    `json:"startTime"` // "10:00"
	EndTime            string    `json:"endTime"`
	SalonID            string    `json:"salonId"`
	SalonName          string    `json:"salonName"`
	Capacity           int       `json:"capacity"`
	RequesterEmail     string    `json:"requesterEmail"`
	RequesterName      string    `json:"requesterName"`
	Department         string    `json:"department"`
	Extension          string    `json:"extension"`
	EventName          string    `json:"eventName"`
	Audience           string    `json:"audience"`
	Priority           int       `json:"priority"`
	ConciergeRequired  bool      `json:"conciergeRequired"`
	ConciergeNotified  bool      `json:"conciergeNotified"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	CancelledBy        string    `json:"cancelledBy,omitempty"`
	CancellationReason string    `json:"cancellationReason,omitempty"`
	ConciergeCode      string    `json:"conciergeCode,omitempty"`
	ConciergeName      string    `json:"conciergeName,omitempty"`
	TenantID           string    `json:"tenantId"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		ID:                 r.ID,
		Token:              r.Token,
		Status:             string(r.Status),
		Date:               r.DateString(),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		SalonID:            r.SalonID,
		SalonName:          r.SalonName,
		Capacity:           r.Capacity,
		RequesterEmail:     r.RequesterEmail,
		RequesterName:      r.RequesterName,
		Department:         r.Department,
		Extension:          r.Extension,
		EventName:          r.EventName,
		Audience:           string(r.Audience),
		Priority:           r.Priority,
		ConciergeRequired:  r.ConciergeRequired,
		ConciergeNotified:  r.ConciergeNotified,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		CancelledBy:        r.CancelledBy,
		CancellationReason: r.CancellationReason,
		ConciergeCode:      r.ConciergeCode,
		TenantID:           domain.NormalizeTenantID(r.TenantID),
	}
}

// FromDomainList конвертирует список; names maps concierge code to display name
func FromDomainList(list []*domain.Reservation, names map[string]string) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: make([]ReservationResponse, 0, len(list))}
	for _, r := range list {
		item := FromDomain(r)
		item.ConciergeName = names[r.ConciergeCode]
		resp.Reservations = append(resp.Reservations, *item)
	}
	return resp
}
