package queries

import (
	"errors"
	"time"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/guard"
)

var ErrGetDraftQueryIsNotConstructed = errors.New(
	"GetDraftQuery must be created via NewGetDraftQuery constructor",
)

// GetDraftQuery retrieves the complete state of a single draft, form fields
// and details document included.
type GetDraftQuery struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDraftQuery creates a query to retrieve one draft by id.
func NewGetDraftQuery(draftID kernel.UUID) (GetDraftQuery, error) {
	draftQuery := GetDraftQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := draftQuery.setDraftID(draftID); err != nil {
		return GetDraftQuery{}, err
	}

	return draftQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDraftQueryIsNotConstructed if validation fails.
func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

// DraftID returns the identifier of the draft to fetch.
func (q GetDraftQuery) DraftID() kernel.UUID {
	return q.draftID
}

func (q *GetDraftQuery) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	q.draftID = draftID
	return nil
}

// GetDraftQueryResponse is the full draft read model. Relational form fields
// appear flat; the secondary fields come back as the typed details document,
// re-validated the same way the aggregate validates them on restore.
type GetDraftQueryResponse struct {
	ID     kernel.UUID
	Status string

	FirstName string
	LastName  string
	Email     string
	Phone     string

	CommunicationMethod string
	PackageType         string

	RiceKrispies int
	Oreos        int
	Pretzels     int
	Marshmallows int

	PickupDate     string
	PickupTime     string
	ReferralSource string

	Details draft.Details

	Rush        bool
	OrderNumber *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time
}
