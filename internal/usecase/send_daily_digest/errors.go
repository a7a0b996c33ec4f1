package send_daily_digest

import "errors"

var (
	// ErrDeliveryFailed the digest could not be sent
	ErrDeliveryFailed = errors.New("send_daily_digest: delivery failed")

	ErrInternal = errors.New("send_daily_digest: internal error")
)
