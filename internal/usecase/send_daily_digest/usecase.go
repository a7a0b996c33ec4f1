package send_daily_digest

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// JobName metrics label and log prefix of the job
const JobName = "daily_digest"

// UseCase mails today's approved reservations to administration and the concierge desk
type UseCase struct {
	reservationRepo ReservationRepository
	builder         MessageBuilder
	sender          Sender
	config          ConfigResolver
	metrics         MetricsRecorder
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	builder MessageBuilder,
	sender Sender,
	config ConfigResolver,
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
		config:          config,
		metrics:         metrics,
		location:        loc,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute nothing is sent when there are no reservations or no recipients
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := req.Date
	if date.IsZero() {
		now := uc.timeProvider.Now().In(uc.location)
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.location)
	}
	resp := &Response{Date: date}

	// 1. Утвержденные резервации дня
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		From:     &date,
		To:       &date,
		Statuses: []domain.ReservationStatus{domain.StatusApproved},
	})
	if err != nil {
		uc.logger.Error("DailyDigest: failed to list reservations for %s: %v", date.Format(domain.DateFormat), err)
		uc.metrics.ObserveJobRun(JobName, "failed")
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}
	resp.Reservations = len(reservations)
	if len(reservations) == 0 {
		uc.logger.Info("DailyDigest: no approved reservations on %s", date.Format(domain.DateFormat))
		uc.metrics.ObserveJobRun(JobName, "skipped")
		return resp, nil
	}

	// 2. Получатели: администраторы и консьерж-служба
	resp.Recipients = req.Recipients
	if len(resp.Recipients) == 0 {
		resp.Recipients = uc.recipients(ctx)
	}

	// 3. Сборка и отправка письма
	msg, ok, err := uc.builder.DigestMessage(ctx, date, reservations, resp.Recipients)
	if err != nil {
		uc.logger.Error("DailyDigest: failed to render digest: %v", err)
		uc.metrics.ObserveJobRun(JobName, "failed")
		return nil, fmt.Errorf("%w: failed to render digest: %v", ErrInternal, err)
	}
	if !ok {
		uc.logger.Warn("DailyDigest: no recipients configured, digest for %s not sent", date.Format(domain.DateFormat))
		uc.metrics.ObserveJobRun(JobName, "skipped")
		return resp, nil
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.logger.Error("DailyDigest: failed to send digest to %v: %v", resp.Recipients, err)
		uc.metrics.ObserveNotification(string(msg.Kind), "failed")
		uc.metrics.ObserveJobRun(JobName, "failed")
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	resp.Sent = true
	uc.metrics.ObserveNotification(string(msg.Kind), "sent")
	uc.metrics.ObserveJobRun(JobName, "ok")
	uc.logger.Info("DailyDigest: sent %d reservations of %s to %d recipients", len(reservations), date.Format(domain.DateFormat), len(resp.Recipients))
	return resp, nil
}

// recipients ADMIN_EMAILS ∪ CONSERJERIA_EMAILS of the global scope, without duplicates
func (uc *UseCase) recipients(ctx context.Context) []string {
	raw := uc.config.Resolve(ctx, domain.SuperScope, domain.KeyAdminEmails) + ";" +
		uc.config.Resolve(ctx, domain.SuperScope, domain.KeyConciergeEmails)
	return domain.ParseEmailList(raw)
}

type nopMetrics struct{}

func (nopMetrics) ObserveJobRun(string, string)       {}
func (nopMetrics) ObserveNotification(string, string) {}
