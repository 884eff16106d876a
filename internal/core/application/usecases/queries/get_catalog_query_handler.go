package queries

import (
	"context"

	"treats/internal/core/ports"
)

// GetCatalogQueryHandler retrieves the reference catalog.
// Catalog access goes through the repository port because the same lookups
// feed the quote calculation; there is no separate read model to maintain.
type GetCatalogQueryHandler struct {
	catalogRepo ports.CatalogRepository
}

// NewGetCatalogQueryHandler creates a handler for catalog retrieval.
func NewGetCatalogQueryHandler(catalogRepo ports.CatalogRepository) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{catalogRepo: catalogRepo}
}

// Handle executes the query to retrieve every active catalog entry.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	packages, err := h.catalogRepo.GetPackageOptions(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	treats, err := h.catalogRepo.GetTreatOptions(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	designs, err := h.catalogRepo.GetDesignOptions(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	timeSlots, err := h.catalogRepo.GetTimeSlots(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	periods, err := h.catalogRepo.GetUnavailablePeriods(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	return GetCatalogQueryResponse{
		Packages:           packages,
		Treats:             treats,
		Designs:            designs,
		TimeSlots:          timeSlots,
		UnavailablePeriods: periods,
	}, nil
}
