package order

import (
	"errors"
	"time"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNumberIsRequired is returned when attempting to create an order with a
	// blank order number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
)

// Order is the record a draft converts into at submission time.
//
// Invariants:
//   - carries a valid id, draft id, and customer id (an order cannot exist
//     without a resolved customer)
//   - carries a non-empty order number
//   - exactly one order exists per draft
type Order struct {
	id          kernel.UUID
	draftID     kernel.UUID
	customerID  kernel.UUID
	number      string
	submittedAt time.Time

	isConstructed bool
}

// NewOrder creates an order for a submitted draft. The number is usually a
// generated one (see GenerateNumber) but the administrative override path may
// supply any non-empty value.
func NewOrder(id, draftID, customerID kernel.UUID, number string, submittedAt time.Time) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDraftID(draftID),
		o.setCustomerID(customerID),
		o.setNumber(number),
	); err != nil {
		return nil, err
	}

	o.submittedAt = submittedAt
	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DraftID returns the originating draft's identifier.
func (o *Order) DraftID() kernel.UUID {
	return o.draftID
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Number returns the order number.
func (o *Order) Number() string {
	return o.number
}

// SubmittedAt returns when the draft was submitted.
func (o *Order) SubmittedAt() time.Time {
	return o.submittedAt
}

// Renumber replaces the order number through the administrative override
// path. It does not reopen the draft's submitted status.
func (o *Order) Renumber(number string) error {
	return o.setNumber(number)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDraftID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.draftID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	o.number = number
	return nil
}
