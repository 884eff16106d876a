package commands

import (
	"errors"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/guard"
)

var ErrDeleteDraftCommandIsNotConstructed = errors.New(
	"DeleteDraftCommand must be created via NewDeleteDraftCommand constructor",
)

// DeleteDraftCommand represents a request to discard a draft.
type DeleteDraftCommand struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDraftCommand creates a command to delete a draft.
func NewDeleteDraftCommand(draftID kernel.UUID) (DeleteDraftCommand, error) {
	draftCommand := DeleteDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := draftCommand.setDraftID(draftID); err != nil {
		return DeleteDraftCommand{}, err
	}

	return draftCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteDraftCommandIsNotConstructed if validation fails.
func (c DeleteDraftCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDraftCommandIsNotConstructed)
}

// DraftID returns the identifier of the draft to delete.
func (c DeleteDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

func (c *DeleteDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}
