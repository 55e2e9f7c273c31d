package jobs

import (
	"context"
	"time"

	"churchplus-backend/internal/logger"
)

// SnapshotContributions is the cron entry point. Errors are already logged
// by runWithRecovery.
func (jr *JobRunner) SnapshotContributions() {
	_ = jr.RunSnapshotContributions()
}

// RunSnapshotContributions stores per-owner totals for the month before the
// current one.
func (jr *JobRunner) RunSnapshotContributions() error {
	return jr.runWithRecovery("SnapshotContributions", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
		defer cancel()

		month := previousMonth(jr.now())
		written, err := jr.services.Contribution.TakeMonthlySnapshots(ctx, month)
		logger.Info("Contribution snapshots stored",
			"month", month.Format("2006-01"),
			"written", written)
		return err
	})
}

func previousMonth(now time.Time) time.Time {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -1, 0)
}
