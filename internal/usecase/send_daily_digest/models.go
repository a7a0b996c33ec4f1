package send_daily_digest

import "time"

// Request zero Date means today; Recipients overrides the configured list (manual previews)
type Request struct {
	Date       time.Time
	Recipients []string
}

type Response struct {
	Date         time.Time
	Reservations int
	Recipients   []string
	Sent         bool
}
