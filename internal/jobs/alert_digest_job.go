package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// alertDigestSchedule fires at the top of every minute.
const alertDigestSchedule = "0 * * * * *"

// AlertDigestJob periodically logs the pending alert log so unhandled
// alerts stay visible.
type AlertDigestJob struct {
	handler queries.GetAlertLogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAlertDigestJob creates the digest job over the alert log query
// handler.
func NewAlertDigestJob(handler queries.GetAlertLogQueryHandler, logger *slog.Logger) *AlertDigestJob {
	return &AlertDigestJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "alert_digest_job"),
	}
}

// Start schedules the job.
func (j *AlertDigestJob) Start() error {
	_, err := j.cron.AddFunc(alertDigestSchedule, func() {
		ctx := context.Background()
		query := queries.NewGetAlertLogQuery()

		log, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Alert digest failed", "error", err)
			return
		}

		if len(log.Codes) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Pending low-stock alerts",
			"codes", log.Codes,
			"used", len(log.Codes),
			"capacity", log.Capacity,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Alert digest job started")
	return nil
}

// Stop stops the job.
func (j *AlertDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Alert digest job stopped")
}
