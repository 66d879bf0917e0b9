package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderDispatchJob          *OrderDispatchJob
	capabilityIndexRefreshJob *CapabilityIndexRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers and index dependencies to wire up the job execution.
func NewJobManager(
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	uowFactory commands.StaffUoWFactory,
	indexHolder *services.CapabilityIndexHolder,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderDispatchJob:          NewOrderDispatchJob(processOrdersHandler, logger),
		capabilityIndexRefreshJob: NewCapabilityIndexRefreshJob(uowFactory, indexHolder, logger),
	}
}

// CapabilityIndexRefreshJob exposes the refresh job so the composition root
// can seed the index once at startup.
func (jm *JobManager) CapabilityIndexRefreshJob() *CapabilityIndexRefreshJob {
	return jm.capabilityIndexRefreshJob
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.capabilityIndexRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start capability index refresh job: %w", err)
	}

	if err := jm.orderDispatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.capabilityIndexRefreshJob.Stop()
		return fmt.Errorf("failed to start order dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderDispatchJob.Stop()
	jm.capabilityIndexRefreshJob.Stop()
}
