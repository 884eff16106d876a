package commands

import (
	"context"
	"time"
)

// PurgeAbandonedDraftsCommandHandler removes unsubmitted drafts whose last
// update falls outside the retention window. Submitted drafts are never
// purged.
type PurgeAbandonedDraftsCommandHandler struct {
	uowFactory DraftUoWFactory
}

// NewPurgeAbandonedDraftsCommandHandler creates a handler for the purge job.
// Requires a DraftUoWFactory for transactional persistence.
func NewPurgeAbandonedDraftsCommandHandler(uowFactory DraftUoWFactory) PurgeAbandonedDraftsCommandHandler {
	return PurgeAbandonedDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns how many drafts were removed.
func (h *PurgeAbandonedDraftsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeAbandonedDraftsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.Retention())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.DraftRepository().DeleteAbandonedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
