package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// lowStockReportSchedule fires at the top of every minute.
const lowStockReportSchedule = "0 * * * * *"

// LowStockReportJob periodically reports products sitting below the
// low-stock threshold.
type LowStockReportJob struct {
	handler queries.GetInventoryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockReportJob creates the reporting job over the inventory query
// handler.
func NewLowStockReportJob(handler queries.GetInventoryQueryHandler, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_report_job"),
	}
}

// Start schedules the job.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc(lowStockReportSchedule, func() {
		ctx := context.Background()
		query := queries.NewGetInventoryQuery()

		lines, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report failed", "error", err)
			return
		}

		for _, line := range lines {
			if line.Low {
				j.logger.WarnContext(ctx, "Product below threshold",
					"code", line.Code,
					"quantity", line.Quantity,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started")
	return nil
}

// Stop stops the job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
