package commands

import (
	"context"
	"time"

	"treats/internal/core/domain/model/customer"
	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/core/ports"
)

// CreateDraftCommandHandler handles the business logic for starting a draft.
// Normalizes the incoming form, correlates a customer record when the form
// carries an email, and persists everything in one transaction.
type CreateDraftCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDraftCommandHandler creates a handler for draft creation operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateDraftCommandHandler(uowFactory UoWFactory) CreateDraftCommandHandler {
	return CreateDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft creation command.
// A non-empty email upserts the customer record keyed by that email and links
// it to the draft; a blank email leaves the draft customerless.
func (h *CreateDraftCommandHandler) Handle(ctx context.Context, cmd CreateDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	newDraft, err := draft.NewDraft(cmd.DraftID(), cmd.Form(), cmd.CurrentStep(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = syncCustomerLink(ctx, uow.CustomerRepository(), newDraft); err != nil {
		return err
	}

	if err = uow.DraftRepository().Add(ctx, newDraft); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// syncCustomerLink reconciles the draft's customer link with its form email.
// A non-empty email upserts the customer keyed by that email (overwriting the
// contact fields) and links the stored record; a blank email clears the link.
func syncCustomerLink(ctx context.Context, customerRepo ports.CustomerRepository, aggregate *draft.Draft) error {
	form := aggregate.Form()
	if customer.NormalizeEmail(form.Email) == "" {
		aggregate.UnlinkCustomer()
		return nil
	}

	entity, err := customer.NewCustomer(kernel.NewUUID(), form.Email, form.FirstName, form.LastName, form.Phone)
	if err != nil {
		return err
	}

	stored, err := customerRepo.Upsert(ctx, entity)
	if err != nil {
		return err
	}

	return aggregate.LinkCustomer(stored.ID())
}
