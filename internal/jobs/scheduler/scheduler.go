package scheduler

import (
	"context"
	"fmt"
	"time"

	"storefront-affiliates/internal/observability"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Spec returns the cron expression the job runs on
	Spec() string
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	cron   *cron.Cron
	jobs   []Job
	logger *observability.Logger
}

// New creates a new scheduler. A run that is still in progress when its next
// tick fires causes that tick to be skipped.
func New(logger *observability.Logger) *Scheduler {
	cronLogger := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		jobs:   make([]Job, 0),
		logger: logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(ctx context.Context, job Job) error {
	_, err := s.cron.AddFunc(job.Spec(), func() {
		jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})
		_ = s.executeJob(jobCtx, job)
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name(), err)
	}
	s.jobs = append(s.jobs, job)
	s.logger.Info(ctx, fmt.Sprintf("Registered scheduled job: %s (schedule: %s)", job.Name(), job.Spec()))
	return nil
}

// Start runs every registered job once, then on its schedule until ctx is
// cancelled. It waits for running jobs before returning.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	for _, job := range s.jobs {
		jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})
		if err := s.executeJob(jobCtx, job); err != nil {
			s.logger.Error(jobCtx, fmt.Sprintf("Failed to execute job %s on startup", job.Name()), err)
		}
	}

	s.cron.Start()
	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	start := time.Now()
	s.logger.Info(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return err
	}

	s.logger.Info(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
	return nil
}

// cronLogger routes cron's own logging through the application logger
type cronLogger struct {
	logger *observability.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(withKeysAndValues(keysAndValues), "cron: "+msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(withKeysAndValues(keysAndValues), "cron: "+msg, err)
}

func withKeysAndValues(keysAndValues []interface{}) context.Context {
	ctx := context.Background()
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		ctx = observability.WithFields(ctx, observability.Field{Key: fmt.Sprint(keysAndValues[i]), Value: keysAndValues[i+1]})
	}
	return ctx
}
