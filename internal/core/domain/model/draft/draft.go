package draft

import (
	"errors"
	"time"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/core/domain/model/steps"
	"treats/internal/pkg/errs"
)

// rushWindow is how close a pickup date must be for the order to count as a
// rush order.
const rushWindow = 14 * 24 * time.Hour

// pickupDateLayout is the wire format of the pickup-date form field.
const pickupDateLayout = "2006-01-02"

var (
	// ErrDraftIsNotConstructed is returned when a Draft instance was not created
	// through NewDraft or RestoreDraft.
	ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft or RestoreDraft constructor")

	// ErrCustomerIsRequired is returned when submitting a draft that has no
	// linked customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer must be linked before the draft can be submitted")
)

// Draft is the order-in-progress aggregate. It owns the canonical form state,
// the embedded details document, the optional customer link, and the one-way
// draft -> submitted transition.
//
// Invariants:
//   - enum-like fields are members of their enumerations (unknown values
//     collapse to unset during normalization)
//   - the visited-steps set is never empty
//   - treat quantities are never negative
//   - a submitted draft never changes status again
//
// The aggregate exclusively owns canonical state; the wizard and UI operate on
// cloned snapshots reconciled back through explicit persistence calls.
type Draft struct {
	id         kernel.UUID
	status     Status
	form       FormData
	customerID *kernel.UUID
	rush       bool

	createdAt   time.Time
	updatedAt   time.Time
	submittedAt *time.Time

	isConstructed bool
}

// NewDraft creates a draft from raw client form data. The form is normalized,
// the current-step pointer is set to startStep (clamped to the step range),
// and the rush flag is derived from the pickup date relative to now.
func NewDraft(id kernel.UUID, form FormData, startStep int, now time.Time) (*Draft, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	form = form.Normalize()
	form.CurrentStep = clampStep(startStep)

	return &Draft{
		id:            id,
		status:        StatusDraft,
		form:          form,
		rush:          deriveRush(form.PickupDate, now),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDraft reconstructs a draft from persistence. The form is re-normalized
// so records written by older schema versions still satisfy the invariants.
func RestoreDraft(
	id kernel.UUID,
	status Status,
	form FormData,
	customerID *kernel.UUID,
	rush bool,
	createdAt, updatedAt time.Time,
	submittedAt *time.Time,
) (*Draft, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Draft{
		id:            id,
		status:        status,
		form:          form.Normalize(),
		customerID:    customerID,
		rush:          rush,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		submittedAt:   submittedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Draft was created through one of its constructors.
func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}
	return nil
}

// IsEqual compares two drafts by identity.
func (d *Draft) IsEqual(other *Draft) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the draft's unique identifier.
func (d *Draft) ID() kernel.UUID {
	return d.id
}

// Status returns the draft's lifecycle status.
func (d *Draft) Status() Status {
	return d.status
}

// Form returns the canonical normalized form state.
func (d *Draft) Form() FormData {
	return d.form
}

// CustomerID returns the linked customer's id, or nil when no customer is
// linked (the email is blank).
func (d *Draft) CustomerID() *kernel.UUID {
	return d.customerID
}

// Rush reports whether the pickup date falls inside the rush window.
func (d *Draft) Rush() bool {
	return d.rush
}

// CreatedAt returns when the draft was first persisted.
func (d *Draft) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the draft last changed.
func (d *Draft) UpdatedAt() time.Time {
	return d.updatedAt
}

// SubmittedAt returns the submission timestamp, or nil while still a draft.
func (d *Draft) SubmittedAt() *time.Time {
	return d.submittedAt
}

// Details projects the form onto the embedded secondary-fields document.
func (d *Draft) Details() Details {
	return Details{
		ColorScheme:     d.form.ColorScheme,
		EventType:       d.form.EventType,
		Theme:           d.form.Theme,
		DesignNotes:     d.form.DesignNotes,
		SelectedDesigns: d.form.SelectedAdditionalDesigns,
		TermsAccepted:   d.form.TermsAccepted,
		VisitedSteps:    d.form.VisitedSteps,
		CurrentStep:     d.form.CurrentStep,
	}
}

// StepSnapshot projects the form onto the step sequencer's view.
func (d *Draft) StepSnapshot() steps.Snapshot {
	return d.form.StepSnapshot()
}

// ApplyFormData replaces the canonical form with a normalized copy of the
// incoming data. The replacement is whole-form: a later update silently
// overwrites an earlier one field for field. The rush flag is re-derived.
func (d *Draft) ApplyFormData(form FormData, now time.Time) {
	d.form = form.Normalize()
	d.rush = deriveRush(d.form.PickupDate, now)
	d.updatedAt = now
}

// SetCurrentStep mutates only the details document's step pointer, leaving
// every other field untouched. Out-of-range values clamp.
func (d *Draft) SetCurrentStep(step int, now time.Time) {
	d.form.CurrentStep = clampStep(step)
	d.updatedAt = now
}

// LinkCustomer attaches the draft to a customer record.
func (d *Draft) LinkCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	d.customerID = &customerID
	return nil
}

// UnlinkCustomer clears the customer link. The customer record itself is left
// untouched; only the draft's reference goes away.
func (d *Draft) UnlinkCustomer() {
	d.customerID = nil
}

// Submit performs the one-way draft -> submitted transition.
//
// It fails with a validation error when the draft is not in StatusDraft (the
// message names the current status) or when no customer is linked. On success
// the status flips and the submission time is stamped; creating the Order row
// and persisting both atomically is the caller's responsibility.
func (d *Draft) Submit(now time.Time) error {
	newStatus, err := d.status.Submit()
	if err != nil {
		return err
	}

	if d.customerID == nil {
		return ErrCustomerIsRequired
	}

	d.status = newStatus
	d.submittedAt = &now
	d.updatedAt = now
	return nil
}

// deriveRush reports whether the pickup date lands inside the rush window
// measured from now. Blank or unparsable dates are never rush.
func deriveRush(pickupDate string, now time.Time) bool {
	if pickupDate == "" {
		return false
	}

	date, err := time.Parse(pickupDateLayout, pickupDate)
	if err != nil {
		return false
	}

	return date.Before(now.Add(rushWindow))
}
