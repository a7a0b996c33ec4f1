package notification

import "context"

// Kind notification type, used as metrics label
type Kind string

const (
	KindConfirmation      Kind = "confirmation"
	KindPending           Kind = "pending"
	KindApproval          Kind = "approval"
	KindCancellation      Kind = "cancellation"
	KindAdminPendingAlert Kind = "admin_pending_alert"
	KindConciergeDesk     Kind = "concierge_desk_alert"
	KindConciergeAssigned Kind = "concierge_assigned"
	KindAccessRequest     Kind = "access_request"
	KindDailyDigest       Kind = "daily_digest"
	KindReminder          Kind = "reminder"
)

// Message rendered mail
type Message struct {
	Kind       Kind
	To         []string
	SenderName string
	ReplyTo    string
	Subject    string
	HTMLBody   string

	// OnSent runs after a successful delivery
	OnSent func(ctx context.Context) `json:"-"`
}
