package list_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// generateIntervals candidate intervals from open every step while start+duration fits before close.
// A duration longer than the window yields nothing.
func generateIntervals(settings domain.TenantSettings, duration int) []domain.Interval {
	window := settings.Window()
	if duration < 1 || duration > window.Duration() {
		return []domain.Interval{}
	}

	step := settings.DurationStep
	if step < 1 {
		step = domain.DefaultDurationStep
	}

	out := make([]domain.Interval, 0, window.Duration()/step+1)
	for t := window.Start; t+duration <= window.End; t += step {
		out = append(out, domain.Interval{Start: t, End: t + duration})
	}
	return out
}
