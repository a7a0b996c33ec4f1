package domain

import "fmt"

// Concierge support staff member assignable to reservations.
// Rows are never removed; deletion flips Active.
type Concierge struct {
	Code   string
	Name   string
	Email  string
	Phone  string
	Active bool
}

// FormatConciergeCode renders a sequence number as C-00001
func FormatConciergeCode(seq int64) string {
	return fmt.Sprintf("%s%05d", ConciergeCodePrefix, seq)
}

// ConciergeUpdate partial update; nil fields are left unchanged
type ConciergeUpdate struct {
	Name   *string
	Email  *string
	Phone  *string
	Active *bool
}

// Apply returns the updated copy and whether anything changed
func (c Concierge) Apply(u ConciergeUpdate) (Concierge, bool) {
	next := c
	if u.Name != nil {
		next.Name = *u.Name
	}
	if u.Email != nil {
		next.Email = *u.Email
	}
	if u.Phone != nil {
		next.Phone = *u.Phone
	}
	if u.Active != nil {
		next.Active = *u.Active
	}
	return next, next != c
}
