package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/core/domain/model/order"
	"treats/internal/pkg/errs"
)

// UpdateDraftCommandHandler handles partial draft updates.
// A form replacement re-runs normalization and re-syncs the customer link; a
// step-only update touches nothing but the step pointer; a manual order number
// attaches or detaches the draft's order record.
type UpdateDraftCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDraftCommandHandler creates a handler for draft update operations.
// Requires a UoWFactory for transactional persistence.
func NewUpdateDraftCommandHandler(uowFactory UoWFactory) UpdateDraftCommandHandler {
	return UpdateDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft update command.
// Returns ErrObjectNotFound when the draft does not exist. The whole update is
// atomic: form, step pointer, customer link, and order record change together
// or not at all.
func (h *UpdateDraftCommandHandler) Handle(ctx context.Context, cmd UpdateDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draftRepo := uow.DraftRepository()
	aggregate, err := draftRepo.Get(ctx, cmd.DraftID())
	if err != nil {
		return err
	}

	if form := cmd.Form(); form != nil {
		aggregate.ApplyFormData(*form, now)

		if err = syncCustomerLink(ctx, uow.CustomerRepository(), aggregate); err != nil {
			return err
		}
	}

	if step := cmd.CurrentStep(); step != nil {
		aggregate.SetCurrentStep(*step, now)
	}

	if number := cmd.OrderNumber(); number != nil {
		if err = h.applyOrderNumber(ctx, uow, aggregate, *number, now); err != nil {
			return err
		}
	}

	if err = draftRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// applyOrderNumber reconciles the draft's order record with a manually
// assigned number. An empty number detaches any existing order; a non-empty
// number renumbers the existing order or creates one, which requires a linked
// customer.
func (h *UpdateDraftCommandHandler) applyOrderNumber(
	ctx context.Context,
	uow UoW,
	aggregate *draft.Draft,
	number string,
	now time.Time,
) error {
	number = strings.TrimSpace(number)
	orderRepo := uow.OrderRepository()

	if number == "" {
		return orderRepo.DeleteByDraftID(ctx, aggregate.ID())
	}

	if aggregate.CustomerID() == nil {
		return draft.ErrCustomerIsRequired
	}

	existing, err := orderRepo.GetByDraftID(ctx, aggregate.ID())
	switch {
	case err == nil:
		if err = existing.Renumber(number); err != nil {
			return err
		}
		return orderRepo.Upsert(ctx, existing)
	case errors.Is(err, errs.ErrObjectNotFound):
		submittedAt := now
		if t := aggregate.SubmittedAt(); t != nil {
			submittedAt = *t
		}

		entity, orderErr := order.NewOrder(kernel.NewUUID(), aggregate.ID(), *aggregate.CustomerID(), number, submittedAt)
		if orderErr != nil {
			return orderErr
		}
		return orderRepo.Add(ctx, entity)
	default:
		return err
	}
}
