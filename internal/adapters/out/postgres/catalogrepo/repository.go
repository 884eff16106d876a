package catalogrepo

import (
	"context"

	"treats/internal/core/domain/model/catalog"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
// All getters return only active entries ordered by sort key.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetPackageOptions retrieves the active fixed-size package options.
func (r *GormCatalogRepository) GetPackageOptions(ctx context.Context) ([]catalog.PackageOption, error) {
	var dtos []PackageOptionDTO
	if err := r.activeSorted(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	options := make([]catalog.PackageOption, 0, len(dtos))
	for _, dto := range dtos {
		options = append(options, packageToDomain(dto))
	}
	return options, nil
}

// GetTreatOptions retrieves the active per-dozen treat prices.
func (r *GormCatalogRepository) GetTreatOptions(ctx context.Context) ([]catalog.TreatOption, error) {
	var dtos []TreatOptionDTO
	if err := r.activeSorted(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	options := make([]catalog.TreatOption, 0, len(dtos))
	for _, dto := range dtos {
		options = append(options, treatToDomain(dto))
	}
	return options, nil
}

// GetDesignOptions retrieves the active add-on design options.
func (r *GormCatalogRepository) GetDesignOptions(ctx context.Context) ([]catalog.DesignOption, error) {
	var dtos []DesignOptionDTO
	if err := r.activeSorted(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	options := make([]catalog.DesignOption, 0, len(dtos))
	for _, dto := range dtos {
		options = append(options, designToDomain(dto))
	}
	return options, nil
}

// GetTimeSlots retrieves the active pickup time slots.
func (r *GormCatalogRepository) GetTimeSlots(ctx context.Context) ([]catalog.TimeSlot, error) {
	var dtos []TimeSlotDTO
	if err := r.activeSorted(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	slots := make([]catalog.TimeSlot, 0, len(dtos))
	for _, dto := range dtos {
		slots = append(slots, timeSlotToDomain(dto))
	}
	return slots, nil
}

// GetUnavailablePeriods retrieves the active blocked pickup periods, ordered
// by start date.
func (r *GormCatalogRepository) GetUnavailablePeriods(ctx context.Context) ([]catalog.UnavailablePeriod, error) {
	var dtos []UnavailablePeriodDTO
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("start_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	periods := make([]catalog.UnavailablePeriod, 0, len(dtos))
	for _, dto := range dtos {
		periods = append(periods, periodToDomain(dto))
	}
	return periods, nil
}

func (r *GormCatalogRepository) activeSorted(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("active = ?", true).Order("sort_order")
}
