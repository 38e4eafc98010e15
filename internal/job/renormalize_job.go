package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Renormalizer rewrites crowded task positions across all projects
type Renormalizer interface {
	RenormalizeAll(ctx context.Context) (int, error)
}

// IdleEvicter drops board views that have not been used for a while
type IdleEvicter interface {
	EvictIdle(now time.Time) int
	Len() int
}

// RenormalizeJob spreads task positions back out in every column whose
// neighbouring positions can no longer be bisected
type RenormalizeJob struct {
	maintenance Renormalizer
	logger      *zap.Logger
	timeout     time.Duration
}

// NewRenormalizeJob creates a new RenormalizeJob instance
func NewRenormalizeJob(maintenance Renormalizer, logger *zap.Logger, timeout time.Duration) *RenormalizeJob {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &RenormalizeJob{
		maintenance: maintenance,
		logger:      logger,
		timeout:     timeout,
	}
}

// Run executes the renormalization job
func (j *RenormalizeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.logger.Info("Starting position renormalization job")

	changed, err := j.maintenance.RenormalizeAll(ctx)
	if err != nil {
		j.logger.Error("Position renormalization job failed",
			zap.Int("rows_changed", changed),
			zap.Error(err),
		)
		return
	}

	j.logger.Info("Position renormalization job completed",
		zap.Int("rows_changed", changed),
		zap.Duration("duration", time.Since(start)),
	)
}

// SessionSweepJob closes idle board views
type SessionSweepJob struct {
	sessions IdleEvicter
	logger   *zap.Logger
	now      func() time.Time
}

func NewSessionSweepJob(sessions IdleEvicter, logger *zap.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes the sweep
func (j *SessionSweepJob) Run() {
	evicted := j.sessions.EvictIdle(j.now())
	if evicted == 0 {
		return
	}
	j.logger.Info("Idle board views closed",
		zap.Int("evicted", evicted),
		zap.Int("open", j.sessions.Len()),
	)
}

// Scheduler owns the cron runner for background jobs
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler creates a scheduler whose jobs never overlap with their own previous run
func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DiscardLogger),
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
		logger: logger,
	}
}

// Add registers job under a standard five-field cron spec or a descriptor like "@every 1m"
func (s *Scheduler) Add(name, spec string, job cron.Job) error {
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("failed to schedule %s job with spec %q: %w", name, spec, err)
	}
	s.logger.Info("Background job scheduled", zap.String("job", name), zap.String("spec", spec))
	return nil
}

// Len reports the number of scheduled jobs
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Background jobs still running at shutdown")
	}
}
