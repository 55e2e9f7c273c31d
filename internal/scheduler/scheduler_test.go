package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchplus-backend/internal/config"
	"churchplus-backend/internal/jobs"
)

func newRunner(schedule string) *jobs.JobRunner {
	cfg := &config.Config{}
	cfg.Scheduler.SnapshotContributions = schedule
	return jobs.NewJobRunner(&jobs.Services{}, cfg)
}

func TestNewScheduler(t *testing.T) {
	t.Run("Registers snapshot job", func(t *testing.T) {
		s, err := NewScheduler(newRunner("0 30 0 1 * *"))
		require.NoError(t, err)
		assert.True(t, s.IsRunning())

		next := s.NextRun()
		assert.Equal(t, 1, next.Day())
		assert.Equal(t, 0, next.Hour())
		assert.Equal(t, 30, next.Minute())
	})

	t.Run("Rejects bad schedule", func(t *testing.T) {
		_, err := NewScheduler(newRunner("every month"))
		assert.Error(t, err)
	})

	t.Run("Rejects five field schedule", func(t *testing.T) {
		_, err := NewScheduler(newRunner("30 0 1 * *"))
		assert.Error(t, err)
	})
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(newRunner("0 30 0 1 * *"))
	require.NoError(t, err)

	s.Start()
	s.Stop()
	assert.True(t, s.IsRunning())
}
