package ports

import (
	"context"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order records.
// A draft has at most one order; all lookups run off the draft identifier.
type OrderRepository interface {
	// Add persists a new order record to storage.
	// The order must be valid and its draft must not already have one.
	Add(ctx context.Context, entity *order.Order) error

	// Upsert stores the order, replacing any record already attached to
	// the same draft.
	Upsert(ctx context.Context, entity *order.Order) error

	// GetByDraftID retrieves the order attached to a draft.
	// Returns ErrObjectNotFound when the draft has no order.
	GetByDraftID(ctx context.Context, draftID kernel.UUID) (*order.Order, error)

	// DeleteByDraftID removes the order attached to a draft.
	// Removing when no order exists is not an error.
	DeleteByDraftID(ctx context.Context, draftID kernel.UUID) error
}
