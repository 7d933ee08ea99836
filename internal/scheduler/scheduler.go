package scheduler

import (
	"context"
	"time"

	"github.com/quantra/financial-data-service/internal/domain/ingestion"
	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/logger"
)

// Scheduler drives recurring ingestion passes. The first pass is due
// immediately on start; each successful pass pushes the next due time
// forward by the tick interval. A failed pass keeps the due time in the
// past so the next poll retries it.
type Scheduler struct {
	usecase      ingestion.Usecase
	logger       logger.Interface
	pollInterval time.Duration
	tickInterval time.Duration
	now          func() time.Time
}

// Option is a configuration option for the Scheduler.
type Option func(*Scheduler)

// WithClock sets the time source, swappable for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// NewScheduler creates a new ingestion scheduler.
func NewScheduler(usecase ingestion.Usecase, logger logger.Interface, pollInterval, tickInterval time.Duration, opts ...Option) *Scheduler {
	s := &Scheduler{
		usecase:      usecase,
		logger:       logger,
		pollInterval: pollInterval,
		tickInterval: tickInterval,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until a value is received on stop. The stop channel is
// polled between passes, never mid-pass, so an in-flight ingestion
// always completes before Run returns. A value on stop is a graceful
// shutdown; a closed channel means the controlling side is gone and
// Run returns an error.
func (s *Scheduler) Run(ctx context.Context, stop <-chan struct{}) error {
	nextDue := s.now()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		if !s.now().Before(nextDue) {
			s.logger.Info("ingestion tick due", logger.NewField("next_due", nextDue))
			if err := s.usecase.RunOnce(ctx); err != nil {
				// Leave nextDue untouched so the next poll retries.
				s.logger.Error(err)
			} else {
				nextDue = nextDue.Add(s.tickInterval)
			}
		}

		select {
		case _, ok := <-stop:
			if !ok {
				return errors.NewTracer("scheduler was disconnected from its stop channel").WithCode(errors.SchedulerFatalError)
			}
			s.logger.Info("scheduler stopping")
			return nil
		case <-ticker.C:
		}
	}
}
