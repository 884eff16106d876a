package commands

import (
	"errors"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/guard"
)

var ErrUpdateDraftCommandIsNotConstructed = errors.New(
	"UpdateDraftCommand must be created via NewUpdateDraftCommand constructor",
)

// UpdateDraftCommand represents a partial update to an existing draft.
// Each field is optional: a nil form leaves the form untouched, a nil
// currentStep leaves the step pointer alone, and a nil orderNumber leaves any
// attached order as it is. A non-nil empty orderNumber detaches the order.
type UpdateDraftCommand struct { //nolint:recvcheck //using for validation
	draftID     kernel.UUID
	form        *draft.FormData
	currentStep *int
	orderNumber *string

	guard guard.ConstructorGuard
}

// NewUpdateDraftCommand creates a command to update a draft in place.
// Only the draft id is validated; optional parts are applied as-is by the
// handler.
func NewUpdateDraftCommand(
	draftID kernel.UUID,
	form *draft.FormData,
	currentStep *int,
	orderNumber *string,
) (UpdateDraftCommand, error) {
	draftCommand := UpdateDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := draftCommand.setDraftID(draftID); err != nil {
		return UpdateDraftCommand{}, err
	}

	draftCommand.form = form
	draftCommand.currentStep = currentStep
	draftCommand.orderNumber = orderNumber
	return draftCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDraftCommandIsNotConstructed if validation fails.
func (c UpdateDraftCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDraftCommandIsNotConstructed)
}

// DraftID returns the identifier of the draft to update.
func (c UpdateDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

// Form returns the replacement form payload, or nil for no form change.
func (c UpdateDraftCommand) Form() *draft.FormData {
	return c.form
}

// CurrentStep returns the new step pointer, or nil for no step change.
func (c UpdateDraftCommand) CurrentStep() *int {
	return c.currentStep
}

// OrderNumber returns the manual order number to attach, an empty string to
// detach the order, or nil for no order change.
func (c UpdateDraftCommand) OrderNumber() *string {
	return c.orderNumber
}

func (c *UpdateDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}
