package trip_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/trip"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderIDs(t *testing.T, n int) []kernel.UUID {
	t.Helper()
	ids := make([]kernel.UUID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, kernel.NewUUID())
	}
	return ids
}

func newTrip(t *testing.T) *trip.Trip {
	t.Helper()
	tr, err := trip.NewTrip(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.RouteKeyForPincode("110001"),
		orderIDs(t, 2),
	)
	require.NoError(t, err)
	return tr
}

func TestNewTrip(t *testing.T) {
	t.Run("should create trip in batch assigned status", func(t *testing.T) {
		id := kernel.NewUUID()
		partnerID := kernel.NewUUID()
		routeKey := kernel.RouteKeyForPincode("110001")
		ids := orderIDs(t, 3)

		tr, err := trip.NewTrip(id, partnerID, routeKey, ids)

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.True(t, tr.ID().IsEqual(id))
		assert.True(t, tr.PartnerID().IsEqual(partnerID))
		assert.True(t, tr.RouteKey().IsEqual(routeKey))
		assert.Equal(t, trip.BatchAssigned, tr.Status())
		assert.False(t, tr.IsClosed())
		assert.False(t, tr.CreatedAt().IsZero())
		require.Len(t, tr.OrderIDs(), 3)
		for i, orderID := range tr.OrderIDs() {
			assert.True(t, orderID.IsEqual(ids[i]))
		}
	})

	t.Run("should fail with empty order set", func(t *testing.T) {
		tr, err := trip.NewTrip(kernel.NewUUID(), kernel.NewUUID(), kernel.RouteKeyForPincode("110001"), nil)

		require.Error(t, err)
		assert.Nil(t, tr)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with more orders than the batch limit", func(t *testing.T) {
		tr, err := trip.NewTrip(
			kernel.NewUUID(), kernel.NewUUID(),
			kernel.RouteKeyForPincode("110001"),
			orderIDs(t, trip.MaxOrders+1),
		)

		require.Error(t, err)
		assert.Nil(t, tr)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with invalid partner ID", func(t *testing.T) {
		var invalidID kernel.UUID

		tr, err := trip.NewTrip(kernel.NewUUID(), invalidID, kernel.RouteKeyForPincode("110001"), orderIDs(t, 1))

		require.Error(t, err)
		assert.Nil(t, tr)
	})

	t.Run("should fail with invalid order ID in the set", func(t *testing.T) {
		var invalidID kernel.UUID

		tr, err := trip.NewTrip(
			kernel.NewUUID(), kernel.NewUUID(),
			kernel.RouteKeyForPincode("110001"),
			[]kernel.UUID{kernel.NewUUID(), invalidID},
		)

		require.Error(t, err)
		assert.Nil(t, tr)
	})
}

func TestTrip_Validate(t *testing.T) {
	var tr trip.Trip

	require.ErrorIs(t, tr.Validate(), trip.ErrTripIsNotConstructed)
}

func TestTrip_MarkDeliveriesComplete(t *testing.T) {
	t.Run("advances to pending store confirm", func(t *testing.T) {
		tr := newTrip(t)

		require.NoError(t, tr.MarkDeliveriesComplete())

		assert.Equal(t, trip.PendingStoreConfirm, tr.Status())
		assert.False(t, tr.IsClosed())
	})

	t.Run("second call fails", func(t *testing.T) {
		tr := newTrip(t)
		require.NoError(t, tr.MarkDeliveriesComplete())

		err := tr.MarkDeliveriesComplete()

		require.Error(t, err)
		assert.Equal(t, trip.PendingStoreConfirm, tr.Status())
	})
}

func TestTrip_Close(t *testing.T) {
	t.Run("closes from pending store confirm", func(t *testing.T) {
		tr := newTrip(t)
		require.NoError(t, tr.MarkDeliveriesComplete())

		require.NoError(t, tr.Close())

		assert.Equal(t, trip.Closed, tr.Status())
		assert.True(t, tr.IsClosed())
	})

	t.Run("cannot close straight from batch assigned", func(t *testing.T) {
		tr := newTrip(t)

		err := tr.Close()

		require.ErrorIs(t, err, trip.ErrTripNotPendingConfirm)
		assert.Equal(t, trip.BatchAssigned, tr.Status())
	})

	t.Run("cannot close twice", func(t *testing.T) {
		tr := newTrip(t)
		require.NoError(t, tr.MarkDeliveriesComplete())
		require.NoError(t, tr.Close())

		require.ErrorIs(t, tr.Close(), trip.ErrTripNotPendingConfirm)
	})
}

func TestRestoreTrip(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

		tr, err := trip.RestoreTrip(
			id, kernel.NewUUID(), kernel.RouteKeyForPincode("110001"),
			orderIDs(t, 2), trip.PendingStoreConfirm, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, trip.PendingStoreConfirm, tr.Status())
		assert.Equal(t, createdAt, tr.CreatedAt())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := trip.RestoreTrip(
			kernel.NewUUID(), kernel.NewUUID(), kernel.RouteKeyForPincode("110001"),
			orderIDs(t, 1), trip.Unknown, time.Now(),
		)

		require.Error(t, err)
	})
}
