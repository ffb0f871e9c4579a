package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := claimTestOrder(t)
	require.NoError(t, testOrder.Claim(kernel.NewUUID()))
	actorID := kernel.NewUUID()

	cmd, err := commands.NewTransitionOrderStatusCommand(testOrder.ID(), order.Packing, actorID, "Picker")
	require.NoError(t, err)

	orderRepo := new(MockClaimOrderRepository)
	uow := new(MockClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	audit := new(MockClaimAuditLog)
	audit.On("Append", ctx, mock.AnythingOfType("ports.AuditRecord")).Once()

	handler := commands.NewTransitionOrderStatusCommandHandler(factory, audit)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Packing, testOrder.Status())

	record := audit.Calls[0].Arguments[1].(ports.AuditRecord)
	assert.Equal(t, "STATUS_UPDATE", record.Action)
	assert.Equal(t, "Picker", record.Role)
	assert.Equal(t, actorID.String(), record.UserID)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()

	testOrder := claimTestOrder(t) // still Placed

	cmd, err := commands.NewTransitionOrderStatusCommand(testOrder.ID(), order.Delivered, kernel.NewUUID(), "Admin")
	require.NoError(t, err)

	orderRepo := new(MockClaimOrderRepository)
	uow := new(MockClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	audit := new(MockClaimAuditLog)

	handler := commands.NewTransitionOrderStatusCommandHandler(factory, audit)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Placed, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, testOrder)
	uow.AssertNotCalled(t, "Commit", ctx)
	audit.AssertNotCalled(t, "Append")
}

func TestTransitionOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, order.Packing, kernel.NewUUID(), "Picker")
	require.NoError(t, err)

	orderRepo := new(MockClaimOrderRepository)
	uow := new(MockClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderStatusCommandHandler(factory, new(MockClaimAuditLog))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
