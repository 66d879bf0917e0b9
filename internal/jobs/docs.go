// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Runs every second to assign pending orders to available staff capabilities
// 2. CapabilityIndexRefreshJob - Periodically rebuilds the capability index from the staff registry
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processOrdersHandler, uowFactory, indexHolder, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" and runs every
// second, which keeps queued orders moving as soon as coverage appears. The
// index refresh runs every minute as a safety net: login and logout already
// rebuild the index synchronously, so the refresh only reconciles drift after
// a crash or an out-of-band registry change.
//
// # Error Handling
//
// - Dispatch job logs all errors as they indicate system issues
// - Refresh job logs errors and leaves the previous index in place
// - Failed job starts will stop any already running jobs
package jobs
