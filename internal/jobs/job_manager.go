package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled background task.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  *slog.Logger
}

// NewJobManager creates a job manager. Jobs start in the given order and stop
// in reverse.
func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}

	jm.logger.Info("Jobs started", "count", len(jm.started))
	return nil
}

// StopAll stops all started jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
