package queries

import (
	"context"
	"database/sql"

	"treats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDraftsQueryHandler retrieves the draft listing from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListDraftsQueryHandler struct {
	db *gorm.DB
}

// NewListDraftsQueryHandler creates a handler for the draft listing query.
// Requires a GORM database connection for query execution.
func NewListDraftsQueryHandler(db *gorm.DB) ListDraftsQueryHandler {
	return ListDraftsQueryHandler{db: db}
}

// Handle executes the query to retrieve all drafts, newest first.
// Drafts with an attached order carry its number; the rest have a nil
// OrderNumber.
func (h ListDraftsQueryHandler) Handle(
	ctx context.Context,
	query ListDraftsQuery,
) ([]ListDraftsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drafts := make([]ListDraftsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.status,
			d.first_name,
			d.last_name,
			d.email,
			d.package_type,
			d.pickup_date,
			d.rush,
			o.number,
			d.created_at,
			d.updated_at,
			d.submitted_at
		FROM drafts d
		LEFT JOIN orders o ON o.draft_id = d.id
		ORDER BY d.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListDraftsQueryResponse
		var id uuid.UUID
		var orderNumber sql.NullString
		var submittedAt sql.NullTime

		err = rows.Scan(
			&id,
			&row.Status,
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&row.PackageType,
			&row.PickupDate,
			&row.Rush,
			&orderNumber,
			&row.CreatedAt,
			&row.UpdatedAt,
			&submittedAt,
		)
		if err != nil {
			return nil, err
		}

		draftID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = draftID

		if orderNumber.Valid {
			row.OrderNumber = &orderNumber.String
		}
		if submittedAt.Valid {
			row.SubmittedAt = &submittedAt.Time
		}
		drafts = append(drafts, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drafts, nil
}
