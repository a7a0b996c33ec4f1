package domain

import (
	"strings"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Salon bookable room
type Salon struct {
	ID                string
	Name              string
	Capacity          int // 0 = not enforced
	Enabled           bool
	Site              string
	Restriction       string // raw restriction expression
	TenantID          string
	ConciergeRequired bool
}

// Restriction compiled restriction expression
type Restriction struct {
	Raw              string
	RequiresApproval bool
	Blackouts        []Interval
}

// ParseRestriction compiles a ";"-separated expression.
// CONFIRM (and the legacy misspelling COFNIRM) turns on approval; HH:MM-HH:MM adds a blackout.
// Malformed tokens are dropped.
func ParseRestriction(raw string) Restriction {
	text := strings.TrimSpace(raw)
	r := Restriction{Raw: text}
	if text == "" {
		return r
	}

	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToUpper(part) {
		case "CONFIRM", "COFNIRM":
			r.RequiresApproval = true
			continue
		}

		bounds := strings.Split(part, "-")
		if len(bounds) != 2 {
			continue
		}
		start, err := types.NewTimeStringFromString(strings.TrimSpace(bounds[0]))
		if err != nil {
			continue
		}
		end, err := types.NewTimeStringFromString(strings.TrimSpace(bounds[1]))
		if err != nil {
			continue
		}
		if end.Minutes() <= start.Minutes() {
			continue
		}
		r.Blackouts = append(r.Blackouts, IntervalOf(start, end))
	}
	return r
}

// Blocks reports whether iv intersects any blackout
func (r Restriction) Blocks(iv Interval) bool {
	for _, b := range r.Blackouts {
		if b.Overlaps(iv) {
			return true
		}
	}
	return false
}

// ConflictStatuses states that occupy a slot: pending claims count in approval-gated salons
func (r Restriction) ConflictStatuses() []ReservationStatus {
	if r.RequiresApproval {
		return []ReservationStatus{StatusApproved, StatusPending}
	}
	return []ReservationStatus{StatusApproved}
}

// ParsedRestriction compiles the salon's restriction expression
func (s *Salon) ParsedRestriction() Restriction {
	return ParseRestriction(s.Restriction)
}

// NeedsConcierge reports whether a reservation over iv needs concierge support
func (s *Salon) NeedsConcierge(iv Interval) bool {
	return s.ConciergeRequired && (iv.Start >= ConciergeCutoffMinute || iv.End > ConciergeCutoffMinute)
}
