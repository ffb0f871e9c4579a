package commands_test

import (
	"context"
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/trip"
	"grocery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReturnCodeStore struct{ mock.Mock }

func (m *MockReturnCodeStore) Get(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func closableTrip(t *testing.T, partnerID kernel.UUID, orders []*order.Order) *trip.Trip {
	t.Helper()
	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	tr, err := trip.NewTrip(kernel.NewUUID(), partnerID, kernel.RouteKeyForPincode("110001"), ids)
	require.NoError(t, err)
	require.NoError(t, tr.MarkDeliveriesComplete())
	return tr
}

func TestCloseTripCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	deliveryPartner := tripAvailablePartner(t)
	require.NoError(t, deliveryPartner.MarkBusy())

	orders := []*order.Order{orderInStatus(t, order.Delivered)}
	testTrip := closableTrip(t, deliveryPartner.ID(), orders)

	cmd, err := commands.NewCloseTripCommand(testTrip.ID(), deliveryPartner.ID(), "SABZI_RETURN_2026")
	require.NoError(t, err)

	returnCodes := new(MockReturnCodeStore)
	returnCodes.On("Get", ctx).Return("SABZI_RETURN_2026", nil).Once()

	orderRepo := new(MockClaimOrderRepository)
	partnerRepo := new(MockTripPartnerRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockTripUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, testTrip.ID()).Return(testTrip, nil).Once(),
		orderRepo.On("GetAllByIDs", ctx, testTrip.OrderIDs()).Return(orders, nil).Once(),
		orderRepo.On("Update", ctx, orders[0]).Return(nil).Once(),
		partnerRepo.On("Get", ctx, deliveryPartner.ID()).Return(deliveryPartner, nil).Once(),
		tripRepo.On("Update", ctx, testTrip).Return(nil).Once(),
		partnerRepo.On("Update", ctx, deliveryPartner).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	audit := new(MockTripAuditLog)
	audit.On("Append", ctx, mock.AnythingOfType("ports.AuditRecord")).Once()

	handler := commands.NewCloseTripCommandHandler(factory, returnCodes, audit)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, trip.Closed, testTrip.Status())
	assert.Equal(t, order.Closed, orders[0].Status())
	assert.False(t, deliveryPartner.IsBusy())

	record := audit.Calls[0].Arguments[1].(ports.AuditRecord)
	assert.Equal(t, "STORE_RETURN_CONFIRMED", record.Action)
	assert.Equal(t, "Delivery", record.Role)
	assert.Equal(t, deliveryPartner.ID().String(), record.UserID)

	returnCodes.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	tripRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestCloseTripCommandHandler_Handle_WrongCodeRejectsBeforeAnyRead(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCloseTripCommand(kernel.NewUUID(), kernel.NewUUID(), "WRONG_CODE")
	require.NoError(t, err)

	returnCodes := new(MockReturnCodeStore)
	returnCodes.On("Get", ctx).Return("SABZI_RETURN_2026", nil).Once()

	factory := new(MockTripUoWFactory)
	audit := new(MockTripAuditLog)

	handler := commands.NewCloseTripCommandHandler(factory, returnCodes, audit)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrInvalidReturnCode)
	factory.AssertNotCalled(t, "Create")
	audit.AssertNotCalled(t, "Append")
}

func TestCloseTripCommandHandler_Handle_WrongPartner(t *testing.T) {
	ctx := t.Context()

	owner := kernel.NewUUID()
	intruder := kernel.NewUUID()
	orders := []*order.Order{orderInStatus(t, order.Delivered)}
	testTrip := closableTrip(t, owner, orders)

	cmd, err := commands.NewCloseTripCommand(testTrip.ID(), intruder, "SABZI_RETURN_2026")
	require.NoError(t, err)

	returnCodes := new(MockReturnCodeStore)
	returnCodes.On("Get", ctx).Return("SABZI_RETURN_2026", nil).Once()

	orderRepo := new(MockClaimOrderRepository)
	partnerRepo := new(MockTripPartnerRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockTripUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, testTrip.ID()).Return(testTrip, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCloseTripCommandHandler(factory, returnCodes, new(MockTripAuditLog))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTripNotOwnedByPartner)
	assert.Equal(t, trip.PendingStoreConfirm, testTrip.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCloseTripCommandHandler_Handle_TripNotPendingConfirm(t *testing.T) {
	ctx := t.Context()

	deliveryPartner := tripAvailablePartner(t)
	require.NoError(t, deliveryPartner.MarkBusy())

	orders := []*order.Order{orderInStatus(t, order.OutForDelivery)}
	testTrip := activeTrip(t, orders)
	earlyTrip, err := trip.RestoreTrip(
		testTrip.ID(), deliveryPartner.ID(), testTrip.RouteKey(),
		testTrip.OrderIDs(), trip.BatchAssigned, testTrip.CreatedAt(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewCloseTripCommand(earlyTrip.ID(), deliveryPartner.ID(), "SABZI_RETURN_2026")
	require.NoError(t, err)

	returnCodes := new(MockReturnCodeStore)
	returnCodes.On("Get", ctx).Return("SABZI_RETURN_2026", nil).Once()

	orderRepo := new(MockClaimOrderRepository)
	partnerRepo := new(MockTripPartnerRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockTripUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, earlyTrip.ID()).Return(earlyTrip, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCloseTripCommandHandler(factory, returnCodes, new(MockTripAuditLog))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, trip.ErrTripNotPendingConfirm)
	assert.True(t, deliveryPartner.IsBusy())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCloseTripCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CloseTripCommand{} // not constructed properly

	returnCodes := new(MockReturnCodeStore)
	factory := new(MockTripUoWFactory)
	handler := commands.NewCloseTripCommandHandler(factory, returnCodes, new(MockTripAuditLog))

	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCloseTripCommandIsNotConstructed)
	returnCodes.AssertNotCalled(t, "Get", ctx)
	factory.AssertNotCalled(t, "Create")
}
