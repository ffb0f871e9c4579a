package commands_test

import (
	"errors"
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	item, err := order.NewItem("sku-milk", "Milk 1L", 6500, 2)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, "12 Market Street", "110001", []order.Item{item}, "UPI")
	require.NoError(t, err)

	orderRepo := new(MockClaimOrderRepository)
	uow := new(MockClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	audit := new(MockClaimAuditLog)
	audit.On("Append", ctx, mock.AnythingOfType("ports.AuditRecord")).Once()
	notifier := new(MockTripNotifier)
	notifier.On("Notify", ctx, "Picker", mock.AnythingOfType("string")).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, audit, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.True(t, added.ID().IsEqual(orderID))
	assert.Equal(t, order.Placed, added.Status())
	assert.Equal(t, "ZONE_1100", added.RouteKey().String())

	record := audit.Calls[0].Arguments[1].(ports.AuditRecord)
	assert.Equal(t, "ORDER_PLACED", record.Action)
	assert.Equal(t, "Customer", record.Role)
	assert.Equal(t, customerID.String(), record.UserID)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	audit.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 Market Street", "110001", nil, "UPI",
	)
	require.NoError(t, err)

	factory := new(MockClaimUoWFactory)
	audit := new(MockClaimAuditLog)
	notifier := new(MockTripNotifier)

	handler := commands.NewPlaceOrderCommandHandler(factory, audit, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrItemsAreRequired)
	factory.AssertNotCalled(t, "Create")
	notifier.AssertNotCalled(t, "Notify")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	factory := new(MockClaimUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, new(MockClaimAuditLog), new(MockTripNotifier))

	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	item, err := order.NewItem("sku-milk", "Milk 1L", 6500, 2)
	require.NoError(t, err)
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 Market Street", "110001", []order.Item{item}, "UPI",
	)
	require.NoError(t, err)

	orderRepo := new(MockClaimOrderRepository)
	uow := new(MockClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockTripNotifier)

	handler := commands.NewPlaceOrderCommandHandler(factory, new(MockClaimAuditLog), notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
	notifier.AssertNotCalled(t, "Notify")
}
