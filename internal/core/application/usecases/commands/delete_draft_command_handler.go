package commands

import (
	"context"
)

// DeleteDraftCommandHandler removes a draft from storage.
// Deleting a submitted draft is allowed; the order record, if any, goes with
// it.
type DeleteDraftCommandHandler struct {
	uowFactory DraftUoWFactory
}

// NewDeleteDraftCommandHandler creates a handler for draft deletion.
// Requires a DraftUoWFactory for transactional persistence.
func NewDeleteDraftCommandHandler(uowFactory DraftUoWFactory) DeleteDraftCommandHandler {
	return DeleteDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Returns ErrObjectNotFound when the draft does not exist.
func (h *DeleteDraftCommandHandler) Handle(ctx context.Context, cmd DeleteDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DraftRepository().Delete(ctx, cmd.DraftID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
