package notification

import (
	"context"
	"strings"
)

// LogSender writes messages to the log instead of delivering them (local development)
type LogSender struct {
	logger Logger
}

func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	s.logger.Info("Mail[%s]: to=%s subject=%q", msg.Kind, strings.Join(msg.To, ","), msg.Subject)
	return nil
}
