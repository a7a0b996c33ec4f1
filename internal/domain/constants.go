package domain

import "time"

// DateFormat calendar date layout used in the API and the store
const DateFormat = "2006-01-02"

// SuperScope tenant scope with access to every tenant
const SuperScope = "1"

// Default operating window and duration bounds
const (
	DefaultOpenTime      = "07:00"
	DefaultCloseTime     = "20:00"
	DefaultDurationMin   = 30
	DefaultDurationMax   = 240
	DefaultDurationStep  = 30
	AdminDefaultPriority = 2
)

// Scheduling rules that do not depend on tenant configuration
const (
	// LastStartMinute latest permitted start (19:00), independent of the closing time
	LastStartMinute = 19 * 60

	// ConciergeCutoffMinute reservations touching or crossing 16:00 need a concierge
	ConciergeCutoffMinute = 16 * 60

	// ChangeNotice admin cancellation and concierge assignment close this long before the start
	ChangeNotice = 30 * time.Minute
)

// Audit values
const (
	PublicCanceller           = "PUBLIC"
	ReasonCascadeCancellation = "Reassigned due to higher-priority claim"
	ReasonTokenCancellation   = "Cancelled by requester via link"
	ReasonAdminCancellation   = "Cancelled by administration"
)

// Identifier prefixes; numeric part is zero padded to five digits
const (
	ReservationIDPrefix = "R-"
	ConciergeCodePrefix = "C-"
)
