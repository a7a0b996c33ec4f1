package send_reminders

import "time"

// Request zero BaseDate means today; reminders go out for the following day
type Request struct {
	BaseDate time.Time
}

type Response struct {
	Date   time.Time
	Sent   []string
	Failed []string
}
