package draftrepo

import (
	"context"
	"errors"
	"time"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDraftRepository implements DraftRepository using GORM.
type GormDraftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDraftRepository creates a new GORM draft repository.
func NewGormDraftRepository(db *gorm.DB, tracker aggregateTracker) *GormDraftRepository {
	return &GormDraftRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new draft to the database.
func (r *GormDraftRepository) Add(ctx context.Context, aggregate *draft.Draft) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing draft to the database.
// Save rewrites the whole row; a cleared customer link or submitted-at stamp
// persists as NULL rather than surviving from the previous state.
func (r *GormDraftRepository) Update(ctx context.Context, aggregate *draft.Draft) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DraftDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("draftId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a draft by ID.
func (r *GormDraftRepository) Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DraftDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draftId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every draft, newest first.
func (r *GormDraftRepository) GetAll(ctx context.Context) ([]*draft.Draft, error) {
	var dtos []DraftDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drafts := make([]*draft.Draft, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}

	return drafts, nil
}

// Delete removes a draft by ID.
func (r *GormDraftRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DraftDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("draftId", id.String())
	}

	return nil
}

// DeleteAbandonedBefore removes unsubmitted drafts last touched before the
// cutoff. Submitted drafts are never purged regardless of age.
func (r *GormDraftRepository) DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", draft.StatusDraft.String(), cutoff).
		Delete(&DraftDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
