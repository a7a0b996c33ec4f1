package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const JobName = "reminders"

// UseCase day-before reminders with a cancellation link, one mail per approved reservation
type UseCase struct {
	reservationRepo ReservationRepository
	builder         MessageBuilder
	sender          Sender
	metrics         MetricsRecorder
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	builder MessageBuilder,
	sender Sender,
	metrics MetricsRecorder,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		builder:         builder,
		sender:          sender,
		metrics:         metrics,
		location:        loc,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute a failing reservation is logged and skipped; the rest still go out
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	base := req.BaseDate
	if base.IsZero() {
		base = uc.timeProvider.Now().In(uc.location)
	}
	target := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, uc.location).AddDate(0, 0, 1)
	resp := &Response{Date: target, Sent: []string{}, Failed: []string{}}

	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		From:     &target,
		To:       &target,
		Statuses: []domain.ReservationStatus{domain.StatusApproved},
	})
	if err != nil {
		uc.logger.Error("Reminders: failed to list reservations for %s: %v", target.Format(domain.DateFormat), err)
		uc.metrics.ObserveJobRun(JobName, "failed")
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}
	if len(reservations) == 0 {
		uc.logger.Info("Reminders: no approved reservations on %s", target.Format(domain.DateFormat))
		uc.metrics.ObserveJobRun(JobName, "skipped")
		return resp, nil
	}

	for _, r := range reservations {
		if err := uc.remind(ctx, r); err != nil {
			uc.logger.Warn("Reminders: reservation id=%s: %v", r.ID, err)
			resp.Failed = append(resp.Failed, r.ID)
			continue
		}
		resp.Sent = append(resp.Sent, r.ID)
	}

	result := "ok"
	if len(resp.Failed) > 0 {
		result = "partial"
	}
	uc.metrics.ObserveJobRun(JobName, result)
	uc.logger.Info("Reminders: %s - sent %d, failed %d", target.Format(domain.DateFormat), len(resp.Sent), len(resp.Failed))
	return resp, nil
}

func (uc *UseCase) remind(ctx context.Context, r *domain.Reservation) error {
	if r.RequesterEmail == "" {
		return fmt.Errorf("no requester email")
	}
	msg, err := uc.builder.ReminderMessage(ctx, r)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.metrics.ObserveNotification(string(msg.Kind), "failed")
		return fmt.Errorf("send: %w", err)
	}
	uc.metrics.ObserveNotification(string(msg.Kind), "sent")
	return nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveJobRun(string, string)       {}
func (nopMetrics) ObserveNotification(string, string) {}
