package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Settings tenant operating window and duration bounds
type Settings struct {
	Open         string `json:"open"`
	Close        string `json:"close"`
	DurationMin  int    `json:"durationMin"`
	DurationStep int    `json:"durationStep"`
	DurationMax  int    `json:"durationMax"`
}

// SalonResponse salon with the settings of its tenant
type SalonResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Capacity          int      `json:"capacity"`
	Enabled           bool     `json:"enabled"`
	Site              string   `json:"site"`
	Restriction       string   `json:"restriction"`
	RequiresApproval  bool     `json:"requiresApproval"`
	TenantID          string   `json:"tenantId"`
	ConciergeRequired bool     `json:"conciergeRequired"`
	Settings          Settings `json:"settings"`
}

// AdminSalonsResponse salons the caller may manage plus the full catalogue
type AdminSalonsResponse struct {
	Manage []SalonResponse `json:"manage"`
	All    []SalonResponse `json:"all"`
}

// ToggleSalonRequest запрос на включение/выключение салона
type ToggleSalonRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// CachedSalon cache snapshot of a stored salon
type CachedSalon struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Capacity          int    `json:"capacity"`
	Enabled           bool   `json:"enabled"`
	Site              string `json:"site"`
	Restriction       string `json:"restriction"`
	TenantID          string `json:"tenantId"`
	ConciergeRequired bool   `json:"conciergeRequired"`
}

// FromDomainSalon конвертирует domain.Salon в снимок для кэша
func FromDomainSalon(s *domain.Salon) CachedSalon {
	return CachedSalon{
		ID:                s.ID,
		Name:              s.Name,
		Capacity:          s.Capacity,
		Enabled:           s.Enabled,
		Site:              s.Site,
		Restriction:       s.Restriction,
		TenantID:          s.TenantID,
		ConciergeRequired: s.ConciergeRequired,
	}
}

// ToDomain restores the domain salon
func (c CachedSalon) ToDomain() *domain.Salon {
	return &domain.Salon{
		ID:                c.ID,
		Name:              c.Name,
		Capacity:          c.Capacity,
		Enabled:           c.Enabled,
		Site:              c.Site,
		Restriction:       c.Restriction,
		TenantID:          c.TenantID,
		ConciergeRequired: c.ConciergeRequired,
	}
}

// FromDomain builds the response of s under settings
func FromDomain(s *domain.Salon, settings domain.TenantSettings) SalonResponse {
	return SalonResponse{
		ID:                s.ID,
		Name:              s.Name,
		Capacity:          s.Capacity,
		Enabled:           s.Enabled,
		Site:              s.Site,
		Restriction:       s.Restriction,
		RequiresApproval:  s.ParsedRestriction().RequiresApproval,
		TenantID:          s.TenantID,
		ConciergeRequired: s.ConciergeRequired,
		Settings: Settings{
			Open:         settings.Open.String(),
			Close:        settings.Close.String(),
			DurationMin:  settings.DurationMin,
			DurationStep: settings.DurationStep,
			DurationMax:  settings.DurationMax,
		},
	}
}
