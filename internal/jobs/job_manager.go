package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Job is one unit of scheduled work.
type Job interface {
	Name() string
	Run(ctx context.Context)
}

// Schedule binds a job to its cron spec.
type Schedule struct {
	Spec string
	Job  Job
}

// JobManager owns the cron scheduler. Jobs receive a context that is cancelled by StopAll.
type JobManager struct {
	cron      *cron.Cron
	schedules []Schedule
	logger    *slog.Logger

	mu      sync.Mutex
	entries []cron.EntryID
	cancel  context.CancelFunc
}

// NewJobManager creates a manager for schedules. Jobs are registered by StartAll.
//
// Example:
//
//	manager := jobs.NewJobManager(logger,
//	    jobs.Schedule{Spec: "*/1 * * * * *", Job: assignmentJob},
//	    jobs.Schedule{Spec: "*/2 * * * * *", Job: movementJob},
//	)
//	if err := manager.StartAll(); err != nil {
//	    return err
//	}
//	defer manager.StopAll()
func NewJobManager(logger *slog.Logger, schedules ...Schedule) *JobManager {
	logger = logger.With("component", "job_manager")
	return &JobManager{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
		),
		schedules: schedules,
		logger:    logger,
	}
}

// StartAll registers every job and starts the scheduler. Nothing runs if any spec is
// invalid.
func (jm *JobManager) StartAll() error {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	if jm.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	entries := make([]cron.EntryID, 0, len(jm.schedules))
	for _, s := range jm.schedules {
		job := s.Job
		id, err := jm.cron.AddFunc(s.Spec, func() { job.Run(ctx) })
		if err != nil {
			for _, added := range entries {
				jm.cron.Remove(added)
			}
			cancel()
			return fmt.Errorf("schedule %s job with %q: %w", job.Name(), s.Spec, err)
		}
		entries = append(entries, id)
		jm.logger.Info("job scheduled", "job", job.Name(), "spec", s.Spec)
	}

	jm.entries, jm.cancel = entries, cancel
	jm.cron.Start()
	return nil
}

// StopAll cancels running ticks and waits for them to return.
func (jm *JobManager) StopAll() {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	if jm.cancel == nil {
		return
	}

	jm.cancel()
	<-jm.cron.Stop().Done()
	for _, id := range jm.entries {
		jm.cron.Remove(id)
	}
	jm.entries, jm.cancel = nil, nil
	jm.logger.Info("jobs stopped")
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

// Info logs cron's routine messages at debug level.
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

// Error logs cron failures, including recovered panics.
func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
