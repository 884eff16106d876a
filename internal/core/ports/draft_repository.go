package ports

import (
	"context"
	"time"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
)

// DraftRepository defines the persistence contract for draft aggregates.
// Provides methods for storing, retrieving, and removing order form drafts.
type DraftRepository interface {
	// Add persists a new draft aggregate to storage.
	// The draft must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *draft.Draft) error

	// Update persists changes to an existing draft aggregate.
	// The draft must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *draft.Draft) error

	// Get retrieves a draft aggregate by its unique identifier.
	// Returns ErrObjectNotFound when no draft with the id exists.
	Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error)

	// GetAll retrieves every stored draft ordered by creation time,
	// newest first.
	GetAll(ctx context.Context) ([]*draft.Draft, error)

	// Delete removes a draft by its unique identifier.
	// Returns ErrObjectNotFound when no draft with the id exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAbandonedBefore removes every unsubmitted draft whose last
	// update precedes the cutoff. Returns the number of drafts removed.
	DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
