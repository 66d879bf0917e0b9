package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob manages the scheduled dispatch of pending orders.
// Runs every second to match queued orders with available staff capabilities.
type OrderDispatchJob struct {
	handler commands.ProcessOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDispatchJob creates a new job for dispatching orders.
// Uses ProcessOrdersCommandHandler to run one dispatch pass every second.
func NewOrderDispatchJob(handler commands.ProcessOrdersCommandHandler, logger *slog.Logger) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the order dispatch job to run every second.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessOrdersCommand()

		started, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order dispatch job failed", "error", err)
			return
		}

		if len(started) > 0 {
			j.logger.InfoContext(ctx, "Dispatch pass started orders", "count", len(started))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every second)")
	return nil
}

// Stop stops the order dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
