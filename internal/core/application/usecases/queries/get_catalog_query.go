package queries

import (
	"errors"

	"treats/internal/core/domain/model/catalog"
	"treats/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the full reference catalog the order form renders:
// packages, treats, designs, pickup time slots, and unavailable periods.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query to retrieve the catalog.
// This is a parameterless query that fetches every active entry.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse bundles the active catalog entries, each list
// ordered by its sort key.
type GetCatalogQueryResponse struct {
	Packages           []catalog.PackageOption
	Treats             []catalog.TreatOption
	Designs            []catalog.DesignOption
	TimeSlots          []catalog.TimeSlot
	UnavailablePeriods []catalog.UnavailablePeriod
}
