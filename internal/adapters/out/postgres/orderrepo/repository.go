package orderrepo

import (
	"context"
	"errors"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/core/domain/model/order"
	"treats/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
// The unique index on draft_id rejects a second order for the same draft, and
// the one on number rejects a duplicate order number.
func (r *GormOrderRepository) Add(ctx context.Context, entity *order.Order) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Upsert saves the order, replacing whatever record the draft already has.
func (r *GormOrderRepository) Upsert(ctx context.Context, entity *order.Order) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "draft_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"customer_id", "number", "submitted_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// GetByDraftID retrieves the order attached to a draft.
func (r *GormOrderRepository) GetByDraftID(ctx context.Context, draftID kernel.UUID) (*order.Order, error) {
	if err := draftID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "draft_id = ?", draftID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draftId", draftID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByDraftID removes the order attached to a draft, if any.
func (r *GormOrderRepository) DeleteByDraftID(ctx context.Context, draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "draft_id = ?", draftID.Bytes()).Error
}
