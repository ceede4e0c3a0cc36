// Package jobs provides scheduled background tasks for the warehouse
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic reporting while the HTTP server runs.
//
// # Available Jobs
//
// 1. LowStockReportJob - Periodically logs every product sitting below the
// low-stock threshold so operators notice drained queues between requests
// 2. AlertDigestJob - Periodically logs the pending alert log, surfacing
// alerts that nobody has handled yet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getInventoryHandler, getAlertLogHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs read committed state only, so a failed run is logged and the
// next tick retries. Failed job starts stop any already running jobs.
package jobs
