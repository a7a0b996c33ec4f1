package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// claim everything the guards look at.
// date, interval and audience are filled by the guards that parse them.
type claim struct {
	salon       *domain.Salon
	settings    domain.TenantSettings
	restriction domain.Restriction
	rawDate     string
	start       types.TimeString
	duration    int
	rawAudience string
	capacity    int
	prio        int

	date       time.Time
	interval   domain.Interval
	audience   domain.AudienceType
	assessment domain.ConflictAssessment
}

type guard struct {
	name  string
	check func(c *claim) error
}

// preflightGuards run before the salon day is locked
var preflightGuards = []guard{
	{name: "salon_enabled", check: func(c *claim) error {
		if !c.salon.Enabled {
			return ErrSalonDisabled
		}
		return nil
	}},
	{name: "capacity", check: func(c *claim) error {
		if c.capacity < 1 {
			return fmt.Errorf("%w: at least one attendee is required", ErrInvalidCapacity)
		}
		if c.salon.Capacity > 0 && c.capacity > c.salon.Capacity {
			return fmt.Errorf("%w: %d exceeds the salon capacity of %d", ErrInvalidCapacity, c.capacity, c.salon.Capacity)
		}
		return nil
	}},
	{name: "schedule", check: func(c *claim) error {
		date, err := time.Parse(domain.DateFormat, strings.TrimSpace(c.rawDate))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, c.rawDate)
		}
		interval, err := domain.NewInterval(c.start, c.settings.ClampDuration(c.duration))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		c.date = date
		c.interval = interval
		return nil
	}},
	{name: "operating_hours", check: func(c *claim) error {
		window := c.settings.Window()
		if c.interval.Start < window.Start {
			return domain.NewConflict(domain.ConflictOutOfHours, "start %s is before opening %s", c.interval.StartTime(), c.settings.Open)
		}
		if c.interval.End > window.End {
			return domain.NewConflict(domain.ConflictOutOfHours, "reservation must end by %s", c.settings.Close)
		}
		if c.interval.Start > domain.LastStartMinute {
			return domain.NewConflict(domain.ConflictOutOfHours, "latest permitted start is 19:00")
		}
		return nil
	}},
	{name: "blackout", check: func(c *claim) error {
		if c.restriction.Blocks(c.interval) {
			return domain.NewConflict(domain.ConflictRestrictedWindow, "salon does not accept reservations in %s", c.interval)
		}
		return nil
	}},
	{name: "audience", check: func(c *claim) error {
		audience, err := domain.ParseAudience(c.rawAudience)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidAudience, c.rawAudience)
		}
		c.audience = audience
		return nil
	}},
}

// conflictGuards run under the salon day lock, against the current occupants
var conflictGuards = []guard{
	{name: "pending_exists", check: func(c *claim) error {
		if c.assessment.HasPending {
			return domain.NewConflict(domain.ConflictPendingExists, "a pending request already holds %s", c.interval)
		}
		return nil
	}},
	{name: "no_priority", check: func(c *claim) error {
		if c.assessment.HasConflict() && c.prio <= 0 {
			return domain.NewConflict(domain.ConflictLowPriority, "interval %s is already reserved", c.interval)
		}
		return nil
	}},
	{name: "external_audience", check: func(c *claim) error {
		if c.assessment.HasExternal {
			return domain.NewConflict(domain.ConflictExternalAudience, "interval %s is held by an event with external audience", c.interval)
		}
		return nil
	}},
	{name: "same_priority", check: func(c *claim) error {
		if c.assessment.HasSamePriority {
			return domain.NewConflict(domain.ConflictSamePriority, "interval %s is held by a requester with the same priority", c.interval)
		}
		return nil
	}},
	{name: "outranked", check: func(c *claim) error {
		if c.assessment.HasConflict() && c.prio <= c.assessment.MaxPriority {
			return domain.NewConflict(domain.ConflictLowPriority, "interval %s is already reserved", c.interval)
		}
		return nil
	}},
}

// runGuards first failure wins
func runGuards(guards []guard, c *claim) (string, error) {
	for _, g := range guards {
		if err := g.check(c); err != nil {
			return g.name, err
		}
	}
	return "", nil
}
