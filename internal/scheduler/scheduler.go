package scheduler

import (
	"context"
	"sync"
	"time"
)

// DefaultTick how often the clock is checked against job hours
const DefaultTick = time.Minute

// Job runs once per local calendar day, at the first tick within Hour
type Job struct {
	Name string
	Hour int
	Run  func(ctx context.Context, now time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler fires daily jobs in a fixed location
type Scheduler struct {
	jobs   []Job
	loc    *time.Location
	tick   time.Duration
	now    func() time.Time
	logger Logger

	mu      sync.Mutex
	lastRun map[string]string
	wg      sync.WaitGroup
}

func New(loc *time.Location, logger Logger, jobs ...Job) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		jobs:    jobs,
		loc:     loc,
		tick:    DefaultTick,
		now:     time.Now,
		logger:  logger,
		lastRun: make(map[string]string, len(jobs)),
	}
}

// Start blocks until ctx is cancelled, then waits for running jobs
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.logger.Info("Scheduler: started with %d job(s) in %s", len(s.jobs), s.loc)
	s.runDue(ctx, s.now())
	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.logger.Info("Scheduler: stopped")
			return
		case <-ticker.C:
			s.runDue(ctx, s.now())
		}
	}
}

// runDue starts every job whose hour has come and that has not run today.
// A job is not backfilled when the process starts after its hour.
func (s *Scheduler) runDue(ctx context.Context, now time.Time) {
	local := now.In(s.loc)
	day := local.Format("2006-01-02")

	for _, job := range s.jobs {
		if local.Hour() != job.Hour {
			continue
		}

		s.mu.Lock()
		if s.lastRun[job.Name] == day {
			s.mu.Unlock()
			continue
		}
		s.lastRun[job.Name] = day
		s.mu.Unlock()

		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			started := time.Now()
			if err := job.Run(ctx, local); err != nil {
				s.logger.Error("Scheduler: job %s failed: %v", job.Name, err)
				return
			}
			s.logger.Info("Scheduler: job %s done in %s", job.Name, time.Since(started))
		}(job)
	}
}
