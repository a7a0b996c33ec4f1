package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ReservationStatus reservation state
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDIENTE"
	StatusApproved  ReservationStatus = "APROBADA"
	StatusCancelled ReservationStatus = "CANCELADA"
)

// ParseReservationStatus case-insensitive parse
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch st := ReservationStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown reservation status %q", ErrValidation, s)
	}
}

// AudienceType event audience classification
type AudienceType string

const (
	AudienceNone     AudienceType = ""
	AudienceInternal AudienceType = "INTERNO"
	AudienceExternal AudienceType = "EXTERNO"
	AudienceMixed    AudienceType = "MIXTO"
)

// NormalizeAudience upper-cases known values and keeps unknown ones verbatim
func NormalizeAudience(s string) AudienceType {
	return AudienceType(strings.ToUpper(strings.TrimSpace(s)))
}

// ParseAudience case-insensitive parse; empty means unclassified
func ParseAudience(s string) (AudienceType, error) {
	switch a := NormalizeAudience(s); a {
	case AudienceNone, AudienceInternal, AudienceExternal, AudienceMixed:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown audience %q", ErrValidation, s)
	}
}

// IsExternalOrMixed external and mixed events are never displaced by priority
func (a AudienceType) IsExternalOrMixed() bool {
	switch NormalizeAudience(string(a)) {
	case AudienceExternal, AudienceMixed:
		return true
	default:
		return false
	}
}

// Reservation a claim on a salon for a time window on one date.
// Field order mirrors the persisted row.
type Reservation struct {
	ID                 string
	Token              string
	Status             ReservationStatus
	Date               time.Time
	StartTime          types.TimeString
	EndTime            types.TimeString
	SalonID            string
	SalonName          string
	Capacity           int
	RequesterEmail     string
	RequesterName      string
	Department         string
	Extension          string
	EventName          string
	Audience           AudienceType
	Priority           int // snapshot taken at creation
	ConciergeRequired  bool
	ConciergeNotified  bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CancelledBy        string
	CancellationReason string
	ConciergeCode      string
	TenantID           string
}

// Interval reservation window in minutes
func (r *Reservation) Interval() Interval {
	return IntervalOf(r.StartTime, r.EndTime)
}

func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

func (r *Reservation) IsApproved() bool {
	return r.Status == StatusApproved
}

// IsCancelled CANCELADA is terminal
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// StartsAt absolute start instant in loc
func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	return r.StartTime.On(r.Date, loc)
}

// ChangeWindowOpen reports whether now is at least ChangeNotice before the start
func (r *Reservation) ChangeWindowOpen(now time.Time) bool {
	deadline := r.StartsAt(now.Location()).Add(-ChangeNotice)
	return !now.After(deadline)
}

// DateString date in DateFormat
func (r *Reservation) DateString() string {
	return r.Date.Format(DateFormat)
}

// VisibleTo reports whether a caller in scope may see or mutate the reservation
func (r *Reservation) VisibleTo(scope string) bool {
	return InScope(scope, r.TenantID)
}

// ReservationFilter listing filter; nil fields are not applied
type ReservationFilter struct {
	From           *time.Time
	To             *time.Time
	TenantID       *string
	RequesterEmail *string
	SalonID        *string
	ConciergeCode  *string
	Statuses       []ReservationStatus
}

// FormatReservationID renders a sequence number as R-00001
func FormatReservationID(seq int64) string {
	return fmt.Sprintf("%s%05d", ReservationIDPrefix, seq)
}
