package jobs

import (
	"context"
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryMetricsJob *DeliveryMetricsJob
}

func NewJobManager(deliveryMetricsJob *DeliveryMetricsJob) *JobManager {
	return &JobManager{deliveryMetricsJob: deliveryMetricsJob}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery metrics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones until ctx expires.
func (jm *JobManager) StopAll(ctx context.Context) {
	jm.deliveryMetricsJob.Stop(ctx)
}
