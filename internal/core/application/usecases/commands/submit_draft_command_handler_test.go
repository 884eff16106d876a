package commands_test

import (
	"testing"
	"time"

	"treats/internal/core/application/usecases/commands"
	"treats/internal/core/domain/model/draft"
	"treats/internal/core/domain/model/kernel"
	"treats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitDraftCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := makeDraft(t, draft.FormData{Email: "maya@example.com"})
	require.NoError(t, existing.LinkCustomer(kernel.NewUUID()))

	cmd, _ := commands.NewSubmitDraftCommand(existing.ID())

	draftRepo := new(MockDraftRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		draftRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDraftCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Regexp(t, `^\d{8}-[A-Z0-9]{12}$`, result.OrderNumber)
	assert.False(t, result.SubmittedAt.IsZero())
	assert.Equal(t, draft.StatusSubmitted, existing.Status())
	draftRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitDraftCommandHandler_Handle_AlreadySubmitted(t *testing.T) {
	ctx := t.Context()
	existing := makeDraft(t, draft.FormData{Email: "maya@example.com"})
	require.NoError(t, existing.LinkCustomer(kernel.NewUUID()))
	require.NoError(t, existing.Submit(time.Now().UTC()))

	cmd, _ := commands.NewSubmitDraftCommand(existing.ID())

	draftRepo := new(MockDraftRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDraftCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already submitted")
	uow.AssertExpectations(t)
}

func TestSubmitDraftCommandHandler_Handle_NoCustomer(t *testing.T) {
	ctx := t.Context()
	existing := makeDraft(t, draft.FormData{FirstName: "Maya"}) // no email, no link

	cmd, _ := commands.NewSubmitDraftCommand(existing.ID())

	draftRepo := new(MockDraftRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(draftRepo).Once(),
		draftRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDraftCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, draft.StatusDraft, existing.Status(), "failed submit leaves the draft submittable")
	customerRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
