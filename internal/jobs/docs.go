// Package jobs provides scheduled background tasks for the order form service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the service requires.
//
// # Available Jobs
//
// 1. DraftCleanupJob - Runs daily to purge unsubmitted drafts older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, retention, logger)
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
// The cleanup job uses the cron expression "0 0 3 * * *" and runs once a day
// at 03:00. Purging is idempotent, so a missed run is recovered by the next one.
//
// # Error Handling
//
// - Cleanup failures are logged and retried on the next scheduled run
// - Submitted drafts are never deleted regardless of age
package jobs
