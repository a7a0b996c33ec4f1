package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MinutesPerDay number of minutes in a day
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString returned when the value is not a valid HH:MM clock time
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow returned when arithmetic leaves the day
	ErrTimeOverflow = errors.New("time string overflows the day")
)

var timeStringPattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)

// TimeString wall-clock time of day in "HH:MM" form
type TimeString string

// NewTimeString builds a TimeString from the clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses "H:MM" or "HH:MM" and normalizes it to "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	m := timeStringPattern.FindStringSubmatch(s)
	if m == nil {
		return "", ErrInvalidTimeString
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if h < 0 || h > 23 || mi < 0 || mi > 59 {
		return "", ErrInvalidTimeString
	}
	return FromMinutes(h*60 + mi)
}

// MustTimeString panics on invalid input; intended for constants and tests
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(fmt.Sprintf("types: invalid time string %q", s))
	}
	return ts
}

// FromMinutes converts minutes since midnight to a TimeString.
// 24:00 is accepted as the end-of-day boundary.
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Minutes returns minutes since midnight, or -1 if the value is malformed
func (t TimeString) Minutes() int {
	m := timeStringPattern.FindStringSubmatch(string(t))
	if m == nil {
		return -1
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if mi > 59 || h*60+mi > MinutesPerDay {
		return -1
	}
	return h*60 + mi
}

// Validate checks the value is a well-formed clock time
func (t TimeString) Validate() error {
	if t.Minutes() < 0 {
		return ErrInvalidTimeString
	}
	return nil
}

// AddMinutes shifts the time by the given number of minutes
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	base := t.Minutes()
	if base < 0 {
		return "", ErrInvalidTimeString
	}
	return FromMinutes(base + minutes)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// On anchors the clock time on the calendar day of date in loc
func (t TimeString) On(date time.Time, loc *time.Location) time.Time {
	m := t.Minutes()
	if m < 0 {
		m = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, loc)
}

// Format12h renders the time as "hh:mm a.m." / "hh:mm p.m."
func (t TimeString) Format12h() string {
	m := t.Minutes()
	if m < 0 {
		return string(t)
	}
	h := (m / 60) % 24
	suffix := "a.m."
	if h >= 12 {
		suffix = "p.m."
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m%60, suffix)
}

func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner; accepts TEXT and TIME columns
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// TIME columns come back as HH:MM:SS
	if len(s) >= 8 && s[2] == ':' && s[5] == ':' {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		if s == "24:00" {
			*t = TimeString(s)
			return nil
		}
		return err
	}
	*t = parsed
	return nil
}
