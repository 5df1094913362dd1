package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	feeRefreshJob *DeliveryFeeRefreshJob
}

// NewJobManager wires the refresh job to its command handler.
func NewJobManager(
	refreshHandler FeeRefresher,
	refreshSchedule string,
	refreshBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		feeRefreshJob: NewDeliveryFeeRefreshJob(refreshHandler, refreshSchedule, refreshBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.feeRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery fee refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones.
func (jm *JobManager) StopAll() {
	jm.feeRefreshJob.Stop()
}
