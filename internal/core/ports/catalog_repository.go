package ports

import (
	"context"

	"treats/internal/core/domain/model/catalog"
)

// CatalogRepository defines the read-only contract for the reference data the
// ordering flow consumes. Implementations return active entries ordered by
// their sort key; the data is maintained outside this service.
type CatalogRepository interface {
	// GetPackageOptions retrieves the active fixed-size package options.
	GetPackageOptions(ctx context.Context) ([]catalog.PackageOption, error)

	// GetTreatOptions retrieves the active per-dozen treat prices.
	GetTreatOptions(ctx context.Context) ([]catalog.TreatOption, error)

	// GetDesignOptions retrieves the active add-on design options.
	GetDesignOptions(ctx context.Context) ([]catalog.DesignOption, error)

	// GetTimeSlots retrieves the active pickup time slots.
	GetTimeSlots(ctx context.Context) ([]catalog.TimeSlot, error)

	// GetUnavailablePeriods retrieves the active blocked pickup periods.
	GetUnavailablePeriods(ctx context.Context) ([]catalog.UnavailablePeriod, error)
}
