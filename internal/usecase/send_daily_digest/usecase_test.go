package send_daily_digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/notification"
	"github.com/m04kA/SMC-SalonService/internal/notification/mocks"
	"github.com/m04kA/SMC-SalonService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var today = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

type metricsSpy struct {
	jobs          []string
	notifications []string
}

func (m *metricsSpy) ObserveJobRun(job, result string) { m.jobs = append(m.jobs, job+":"+result) }
func (m *metricsSpy) ObserveNotification(kind, result string) {
	m.notifications = append(m.notifications, kind+":"+result)
}

func approved(id string, date time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID: id, Status: status, Date: date, SalonID: "AZUL", SalonName: "Salón Azul",
		StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("10:00"),
		RequesterEmail: "ana@corp.test", RequesterName: "Ana", EventName: "Comité",
	}
}

func newUseCase(t *testing.T, sender Sender, rows ...*domain.Reservation) (*UseCase, *metricsSpy) {
	t.Helper()
	config := usecasetest.Config{
		domain.KeyAdminEmails:     "admin@corp.test; Conserjes@corp.test",
		domain.KeyConciergeEmails: "conserjes@corp.test,desk@corp.test",
	}
	notifier := notification.NewNotifier(nil, config, nil, "", "https://reservas.corp.test", usecasetest.NopLogger{})
	m := &metricsSpy{}
	uc := NewUseCase(usecasetest.NewReservations(rows...), notifier, sender, config, m, time.UTC, usecasetest.NopLogger{})
	uc.timeProvider = &usecasetest.Clock{T: today.Add(5 * time.Hour)}
	return uc, m
}

func TestUseCase_SendsDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)

	var sent notification.Message
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notification.Message) error {
		sent = msg
		return nil
	})

	uc, m := newUseCase(t, sender,
		approved("R-1", today, domain.StatusApproved),
		approved("R-2", today, domain.StatusPending),
		approved("R-3", today.AddDate(0, 0, 1), domain.StatusApproved),
	)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.True(t, resp.Sent)
	assert.Equal(t, 1, resp.Reservations)
	assert.Equal(t, []string{"admin@corp.test", "conserjes@corp.test", "desk@corp.test"}, resp.Recipients)

	assert.Equal(t, notification.KindDailyDigest, sent.Kind)
	assert.Equal(t, resp.Recipients, sent.To)
	assert.Contains(t, sent.HTMLBody, "Salón Azul")
	assert.Equal(t, []string{"daily_digest:ok"}, m.jobs)
	assert.Equal(t, []string{"daily_digest:sent"}, m.notifications)
}

func TestUseCase_SkipsEmptyDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)

	uc, m := newUseCase(t, sender, approved("R-1", today, domain.StatusCancelled))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.False(t, resp.Sent)
	assert.Equal(t, []string{"daily_digest:skipped"}, m.jobs)
}

func TestUseCase_PreviewOverridesRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	date := today.AddDate(0, 0, 1)
	uc, m := newUseCase(t, sender, approved("R-3", date, domain.StatusApproved))

	_, err := uc.Execute(context.Background(), &Request{Date: date, Recipients: []string{"me@corp.test"}})
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, []string{"daily_digest:failed"}, m.jobs)
}
