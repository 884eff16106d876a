package jobs

import (
	"context"
	"log/slog"
	"time"

	"treats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DraftCleanupJob manages the scheduled purge of abandoned drafts.
// Runs once a day and removes unsubmitted drafts older than the retention
// window. Submitted drafts are never touched.
type DraftCleanupJob struct {
	handler   commands.PurgeAbandonedDraftsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDraftCleanupJob creates a new job for purging abandoned drafts.
// Uses PurgeAbandonedDraftsCommandHandler with the configured retention window.
func NewDraftCleanupJob(
	handler commands.PurgeAbandonedDraftsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *DraftCleanupJob {
	return &DraftCleanupJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "draft_cleanup_job"),
	}
}

// Start begins the draft cleanup job to run daily at 03:00.
func (j *DraftCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeAbandonedDraftsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft cleanup job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged abandoned drafts", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft cleanup job started (running daily)",
		"retention", j.retention.String())
	return nil
}

// Stop stops the draft cleanup job.
func (j *DraftCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft cleanup job stopped")
}
