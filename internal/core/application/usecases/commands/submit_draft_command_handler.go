package commands

import (
	"context"
	"time"

	"treats/internal/core/domain/model/kernel"
	"treats/internal/core/domain/model/order"
)

// SubmitResult carries the externally visible outcome of a submission.
type SubmitResult struct {
	OrderNumber string
	SubmittedAt time.Time
}

// SubmitDraftCommandHandler finalizes a draft into a submitted order.
// The status flip, the generated order record, and the draft update are
// persisted in one transaction: a failure on any of them leaves the draft
// untouched and submittable again.
type SubmitDraftCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitDraftCommandHandler creates a handler for draft submission.
// Requires a UoWFactory for transactional persistence.
func NewSubmitDraftCommandHandler(uowFactory UoWFactory) SubmitDraftCommandHandler {
	return SubmitDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command.
// Submission is not idempotent: a second submit of the same draft fails with a
// validation error naming the current status. Returns ErrObjectNotFound when
// the draft does not exist.
func (h *SubmitDraftCommandHandler) Handle(ctx context.Context, cmd SubmitDraftCommand) (SubmitResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitResult{}, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draftRepo := uow.DraftRepository()
	aggregate, err := draftRepo.Get(ctx, cmd.DraftID())
	if err != nil {
		return SubmitResult{}, err
	}

	// A draft whose form gained an email since the last save may not be
	// linked yet; reconcile before the link requirement is checked.
	if aggregate.CustomerID() == nil {
		if err = syncCustomerLink(ctx, uow.CustomerRepository(), aggregate); err != nil {
			return SubmitResult{}, err
		}
	}

	if err = aggregate.Submit(now); err != nil {
		return SubmitResult{}, err
	}

	number := order.GenerateNumber(now)
	entity, err := order.NewOrder(kernel.NewUUID(), aggregate.ID(), *aggregate.CustomerID(), number, now)
	if err != nil {
		return SubmitResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, entity); err != nil {
		return SubmitResult{}, err
	}

	if err = draftRepo.Update(ctx, aggregate); err != nil {
		return SubmitResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{OrderNumber: number, SubmittedAt: now}, nil
}
