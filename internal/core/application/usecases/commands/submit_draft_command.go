package commands

import (
	"errors"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/guard"
)

var ErrSubmitDraftCommandIsNotConstructed = errors.New(
	"SubmitDraftCommand must be created via NewSubmitDraftCommand constructor",
)

// SubmitDraftCommand represents a request to finalize a draft into an order.
type SubmitDraftCommand struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitDraftCommand creates a command to submit a draft.
func NewSubmitDraftCommand(draftID kernel.UUID) (SubmitDraftCommand, error) {
	draftCommand := SubmitDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := draftCommand.setDraftID(draftID); err != nil {
		return SubmitDraftCommand{}, err
	}

	return draftCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitDraftCommandIsNotConstructed if validation fails.
func (c SubmitDraftCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDraftCommandIsNotConstructed)
}

// DraftID returns the identifier of the draft to submit.
func (c SubmitDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

func (c *SubmitDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}
