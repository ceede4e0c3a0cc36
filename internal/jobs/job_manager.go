package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockReportJob *LowStockReportJob
	alertDigestJob    *AlertDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getInventoryHandler queries.GetInventoryQueryHandler,
	getAlertLogHandler queries.GetAlertLogQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockReportJob: NewLowStockReportJob(getInventoryHandler, logger),
		alertDigestJob:    NewAlertDigestJob(getAlertLogHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	if err := jm.alertDigestJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockReportJob.Stop()
		return fmt.Errorf("failed to start alert digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
	jm.alertDigestJob.Stop()
}
