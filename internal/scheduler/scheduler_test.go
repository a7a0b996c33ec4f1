package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recorder struct {
	mu   sync.Mutex
	runs []string
}

func (r *recorder) job(name string, hour int) Job {
	return Job{Name: name, Hour: hour, Run: func(_ context.Context, now time.Time) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.runs = append(r.runs, name+"@"+now.Format("2006-01-02T15:04"))
		return nil
	}}
}

func TestScheduler_RunDue(t *testing.T) {
	loc, err := time.LoadLocation("America/Santo_Domingo")
	require.NoError(t, err)

	rec := &recorder{}
	s := New(loc, nopLogger{}, rec.job("daily_digest", 5), rec.job("reminders", 7))
	ctx := context.Background()

	at := func(day, hour, minute int) time.Time {
		return time.Date(2026, 3, day, hour, minute, 0, 0, loc)
	}

	s.runDue(ctx, at(10, 4, 59))
	s.runDue(ctx, at(10, 5, 0))
	s.runDue(ctx, at(10, 5, 1))
	s.runDue(ctx, at(10, 7, 30))
	s.runDue(ctx, at(11, 5, 10))
	s.wg.Wait()

	assert.ElementsMatch(t, []string{
		"daily_digest@2026-03-10T05:00",
		"reminders@2026-03-10T07:30",
		"daily_digest@2026-03-11T05:10",
	}, rec.runs)
}

func TestScheduler_UsesConfiguredLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Santo_Domingo")
	require.NoError(t, err)

	rec := &recorder{}
	s := New(loc, nopLogger{}, rec.job("daily_digest", 5))

	// 09:00 UTC is 05:00 in Santo Domingo (UTC-4)
	s.runDue(context.Background(), time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	s.wg.Wait()

	assert.Equal(t, []string{"daily_digest@2026-03-10T05:00"}, rec.runs)
}

func TestScheduler_StartStopsOnCancel(t *testing.T) {
	s := New(time.UTC, nopLogger{})
	s.tick = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
