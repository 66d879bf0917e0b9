package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// CapabilityIndexRefreshJob periodically rebuilds the capability index from
// the staff registry. Login and logout rebuild the index synchronously, so
// this job is a reconciliation pass: it restores the index after a restart
// and corrects drift if the registry was changed out of band.
type CapabilityIndexRefreshJob struct {
	uowFactory  commands.StaffUoWFactory
	indexHolder *services.CapabilityIndexHolder
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewCapabilityIndexRefreshJob creates a new job for reconciling the
// capability index with the staff registry.
func NewCapabilityIndexRefreshJob(
	uowFactory commands.StaffUoWFactory,
	indexHolder *services.CapabilityIndexHolder,
	logger *slog.Logger,
) *CapabilityIndexRefreshJob {
	return &CapabilityIndexRefreshJob{
		uowFactory:  uowFactory,
		indexHolder: indexHolder,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "capability_index_refresh_job"),
	}
}

// Refresh rebuilds the capability index from the current registry snapshot
// and publishes it through the holder's Update, so a reconciliation pass can
// never overwrite the index of a login/logout that committed after its read.
// Also used at startup to seed the index before the first login.
func (j *CapabilityIndexRefreshJob) Refresh(ctx context.Context) error {
	return j.indexHolder.Update(func() (services.CapabilityIndex, error) {
		uow := j.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return services.CapabilityIndex{}, err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		registry, err := uow.StaffRepository().GetAll(ctx)
		if err != nil {
			return services.CapabilityIndex{}, err
		}

		return services.BuildCapabilityIndex(registry), nil
	})
}

// Start begins the refresh job to run every minute.
func (j *CapabilityIndexRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Capability index refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capability index refresh job started (running every minute)")
	return nil
}

// Stop stops the refresh job.
func (j *CapabilityIndexRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Capability index refresh job stopped")
}
