package queries

import (
	"errors"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/guard"
)

var ErrGetDraftQuoteQueryIsNotConstructed = errors.New(
	"GetDraftQuoteQuery must be created via NewGetDraftQuoteQuery constructor",
)

// GetDraftQuoteQuery retrieves the price breakdown for a draft's current
// selections.
type GetDraftQuoteQuery struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDraftQuoteQuery creates a query to price one draft.
func NewGetDraftQuoteQuery(draftID kernel.UUID) (GetDraftQuoteQuery, error) {
	quoteQuery := GetDraftQuoteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := quoteQuery.setDraftID(draftID); err != nil {
		return GetDraftQuoteQuery{}, err
	}

	return quoteQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDraftQuoteQueryIsNotConstructed if validation fails.
func (q GetDraftQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQuoteQueryIsNotConstructed)
}

// DraftID returns the identifier of the draft to price.
func (q GetDraftQuoteQuery) DraftID() kernel.UUID {
	return q.draftID
}

func (q *GetDraftQuoteQuery) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	q.draftID = draftID
	return nil
}

// GetDraftQuoteQueryResponse is the monetary breakdown read model.
// Deposit and Balance are each half of Total and may be fractional.
type GetDraftQuoteQueryResponse struct {
	PackagePrice float64
	DesignsPrice float64
	Total        float64
	Deposit      float64
	Balance      float64
}
