package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDraftQueryHandler retrieves one draft's full state from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDraftQueryHandler struct {
	db *gorm.DB
}

// NewGetDraftQueryHandler creates a handler for the single-draft query.
// Requires a GORM database connection for query execution.
func NewGetDraftQueryHandler(db *gorm.DB) GetDraftQueryHandler {
	return GetDraftQueryHandler{db: db}
}

// Handle executes the query to retrieve one draft.
// Returns ErrObjectNotFound when no draft with the id exists. The details
// document is coerced through DetailsFromMap, so documents written by older
// schema versions still come back well formed.
func (h GetDraftQueryHandler) Handle(
	ctx context.Context,
	query GetDraftQuery,
) (GetDraftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDraftQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.status,
			d.first_name,
			d.last_name,
			d.email,
			d.phone,
			d.communication_method,
			d.package_type,
			d.rice_krispies,
			d.oreos,
			d.pretzels,
			d.marshmallows,
			d.pickup_date,
			d.pickup_time,
			d.referral_source,
			d.details,
			d.rush,
			o.number,
			d.created_at,
			d.updated_at,
			d.submitted_at
		FROM drafts d
		LEFT JOIN orders o ON o.draft_id = d.id
		WHERE d.id = ?
	`, query.DraftID().Bytes()).Rows()
	if err != nil {
		return GetDraftQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDraftQueryResponse{}, err
		}
		return GetDraftQueryResponse{}, errs.NewObjectNotFoundError("draftId", query.DraftID())
	}

	var response GetDraftQueryResponse
	var id uuid.UUID
	var details []byte
	var orderNumber sql.NullString
	var submittedAt sql.NullTime

	err = rows.Scan(
		&id,
		&response.Status,
		&response.FirstName,
		&response.LastName,
		&response.Email,
		&response.Phone,
		&response.CommunicationMethod,
		&response.PackageType,
		&response.RiceKrispies,
		&response.Oreos,
		&response.Pretzels,
		&response.Marshmallows,
		&response.PickupDate,
		&response.PickupTime,
		&response.ReferralSource,
		&details,
		&response.Rush,
		&orderNumber,
		&response.CreatedAt,
		&response.UpdatedAt,
		&submittedAt,
	)
	if err != nil {
		return GetDraftQueryResponse{}, err
	}

	draftID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDraftQueryResponse{}, err
	}
	response.ID = draftID

	raw := map[string]any{}
	if len(details) > 0 {
		if err = json.Unmarshal(details, &raw); err != nil {
			return GetDraftQueryResponse{}, err
		}
	}
	response.Details = draft.DetailsFromMap(raw)

	if orderNumber.Valid {
		response.OrderNumber = &orderNumber.String
	}
	if submittedAt.Valid {
		response.SubmittedAt = &submittedAt.Time
	}

	return response, nil
}
