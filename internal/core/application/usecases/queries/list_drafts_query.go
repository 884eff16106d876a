// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/guard"
)

var ErrListDraftsQueryIsNotConstructed = errors.New(
	"ListDraftsQuery must be created via NewListDraftsQuery constructor",
)

// ListDraftsQuery retrieves a summary of every draft, newest first.
// Used by the admin listing; the full form is available through GetDraftQuery.
type ListDraftsQuery struct {
	guard guard.ConstructorGuard
}

// NewListDraftsQuery creates a query to retrieve the draft listing.
// This is a parameterless query that fetches the complete list.
func NewListDraftsQuery() ListDraftsQuery {
	return ListDraftsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDraftsQueryIsNotConstructed if validation fails.
func (q ListDraftsQuery) Validate() error {
	return q.guard.Validate(ErrListDraftsQueryIsNotConstructed)
}

// ListDraftsQueryResponse is one row of the draft listing read model.
// OrderNumber is nil while the draft has no attached order.
type ListDraftsQueryResponse struct {
	ID          kernel.UUID
	Status      string
	FirstName   string
	LastName    string
	Email       string
	PackageType string
	PickupDate  string
	Rush        bool
	OrderNumber *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time
}
