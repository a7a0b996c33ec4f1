package domain

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Interval half-open range of minutes since midnight: [Start, End)
type Interval struct {
	Start int
	End   int
}

// NewInterval builds [start, start+duration)
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	s := start.Minutes()
	if s < 0 {
		return Interval{}, fmt.Errorf("%w: start %q", types.ErrInvalidTimeString, start)
	}
	return Interval{Start: s, End: s + durationMinutes}, nil
}

// IntervalOf builds the interval between two clock times
func IntervalOf(start, end types.TimeString) Interval {
	return Interval{Start: start.Minutes(), End: end.Minutes()}
}

// Overlaps reports whether two half-open intervals share at least one minute
func (i Interval) Overlaps(other Interval) bool {
	return !(i.End <= other.Start || i.Start >= other.End)
}

// Contains reports whether other lies fully inside i
func (i Interval) Contains(other Interval) bool {
	return other.Start >= i.Start && other.End <= i.End
}

// Duration length in minutes
func (i Interval) Duration() int {
	return i.End - i.Start
}

func (i Interval) StartTime() types.TimeString {
	ts, _ := types.FromMinutes(i.Start)
	return ts
}

func (i Interval) EndTime() types.TimeString {
	ts, _ := types.FromMinutes(i.End)
	return ts
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.StartTime(), i.EndTime())
}
