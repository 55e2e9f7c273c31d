package jobs

import (
	"fmt"
	"time"

	"churchplus-backend/internal/config"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/service"
)

const (
	JobSnapshotContributions = "snapshot"
	JobAllMonthly            = "all-monthly"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	config   *config.Config
	now      func() time.Time
	timeout  time.Duration
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Contribution service.ContributionService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		services: services,
		config:   cfg,
		now:      time.Now,
		timeout:  10 * time.Minute,
	}
}

// Config exposes the configuration the scheduler reads schedules from
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err = jobFunc(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return err
	}
	logger.Info("Job completed", "job", jobName)
	return nil
}

// RunAllMonthlyJobs runs all monthly jobs (for manual execution)
func (jr *JobRunner) RunAllMonthlyJobs() error {
	return jr.RunSnapshotContributions()
}

// RunJob runs the named job once
func (jr *JobRunner) RunJob(name string) error {
	switch name {
	case JobSnapshotContributions:
		return jr.RunSnapshotContributions()
	case JobAllMonthly:
		return jr.RunAllMonthlyJobs()
	default:
		return fmt.Errorf("unknown job %q", name)
	}
}

// JobNames lists what RunJob accepts
func JobNames() []string {
	return []string{JobSnapshotContributions, JobAllMonthly}
}
