package queries

import (
	"context"
	"encoding/json"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/services"
	"treats/internal/core/ports"
	"treats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDraftQuoteQueryHandler prices a draft's current selections.
// Loads the pricing-relevant form fields directly and delegates the math to
// the pure pricing calculator; catalog lookups go through the repository port.
type GetDraftQuoteQueryHandler struct {
	db          *gorm.DB
	catalogRepo ports.CatalogRepository
}

// NewGetDraftQuoteQueryHandler creates a handler for the quote query.
// Requires a GORM database connection and the catalog repository.
func NewGetDraftQuoteQueryHandler(db *gorm.DB, catalogRepo ports.CatalogRepository) GetDraftQuoteQueryHandler {
	return GetDraftQuoteQueryHandler{db: db, catalogRepo: catalogRepo}
}

// Handle executes the quote query.
// Returns ErrObjectNotFound when no draft with the id exists. Pricing itself
// never fails: selections missing from the catalog degrade to zero or to the
// default treat prices.
func (h GetDraftQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetDraftQuoteQuery,
) (GetDraftQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDraftQuoteQueryResponse{}, err
	}

	form, err := h.loadForm(ctx, query)
	if err != nil {
		return GetDraftQuoteQueryResponse{}, err
	}

	packages, err := h.catalogRepo.GetPackageOptions(ctx)
	if err != nil {
		return GetDraftQuoteQueryResponse{}, err
	}

	treats, err := h.catalogRepo.GetTreatOptions(ctx)
	if err != nil {
		return GetDraftQuoteQueryResponse{}, err
	}

	designs, err := h.catalogRepo.GetDesignOptions(ctx)
	if err != nil {
		return GetDraftQuoteQueryResponse{}, err
	}

	quote := services.CalculateQuote(form, packages, treats, designs)

	return GetDraftQuoteQueryResponse{
		PackagePrice: quote.PackagePrice,
		DesignsPrice: quote.DesignsPrice,
		Total:        quote.Total,
		Deposit:      quote.Deposit,
		Balance:      quote.Balance,
	}, nil
}

// loadForm fetches only the fields the calculator inspects: the package type,
// the treat quantities, and the selected designs from the details document.
func (h GetDraftQuoteQueryHandler) loadForm(
	ctx context.Context,
	query GetDraftQuoteQuery,
) (draft.FormData, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			package_type,
			rice_krispies,
			oreos,
			pretzels,
			marshmallows,
			details
		FROM drafts
		WHERE id = ?
	`, query.DraftID().Bytes()).Rows()
	if err != nil {
		return draft.FormData{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return draft.FormData{}, err
		}
		return draft.FormData{}, errs.NewObjectNotFoundError("draftId", query.DraftID())
	}

	var form draft.FormData
	var details []byte

	err = rows.Scan(
		&form.PackageType,
		&form.RiceKrispies,
		&form.Oreos,
		&form.Pretzels,
		&form.Marshmallows,
		&details,
	)
	if err != nil {
		return draft.FormData{}, err
	}

	raw := map[string]any{}
	if len(details) > 0 {
		if err = json.Unmarshal(details, &raw); err != nil {
			return draft.FormData{}, err
		}
	}
	form.SelectedAdditionalDesigns = draft.DetailsFromMap(raw).SelectedDesigns

	return form, nil
}
