package commands

import (
	"errors"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/guard"
)

var ErrCreateDraftCommandIsNotConstructed = errors.New(
	"CreateDraftCommand must be created via NewCreateDraftCommand constructor",
)

// CreateDraftCommand represents a request to start a new order form draft.
// The form payload may be anything from completely empty to fully filled in;
// normalization happens inside the aggregate.
//
// Example:
//
//	draftID := kernel.NewUUID()
//	cmd, err := NewCreateDraftCommand(draftID, formData, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid draft data: %w", err)
//	}
//
//	handler := NewCreateDraftCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create draft: %w", err)
//	}
type CreateDraftCommand struct { //nolint:recvcheck //using for validation
	draftID     kernel.UUID
	form        draft.FormData
	currentStep int

	guard guard.ConstructorGuard
}

// NewCreateDraftCommand creates a command to start a new draft.
// Only the draft id is validated here; form content is normalized, never
// rejected. A currentStep outside the step range clamps in the aggregate.
func NewCreateDraftCommand(draftID kernel.UUID, form draft.FormData, currentStep int) (CreateDraftCommand, error) {
	draftCommand := CreateDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := draftCommand.setDraftID(draftID); err != nil {
		return CreateDraftCommand{}, err
	}

	draftCommand.form = form
	draftCommand.currentStep = currentStep
	return draftCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDraftCommandIsNotConstructed if validation fails.
func (c CreateDraftCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftCommandIsNotConstructed)
}

// DraftID returns the unique identifier for the new draft.
func (c CreateDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

// Form returns the raw form payload to seed the draft with.
func (c CreateDraftCommand) Form() draft.FormData {
	return c.form
}

// CurrentStep returns the step index the wizard should open on.
func (c CreateDraftCommand) CurrentStep() int {
	return c.currentStep
}

func (c *CreateDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}
