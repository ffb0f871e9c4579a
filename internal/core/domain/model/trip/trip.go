package trip

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// MaxOrders is the largest number of orders one delivery trip may carry.
const MaxOrders = 3

// Domain errors for trip operations.
var (
	// ErrTripIsNotConstructed is returned when using an improperly initialized Trip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")
	// ErrNoOrders is returned when creating a trip with an empty order set.
	ErrNoOrders = errs.NewValueIsRequiredError("orders")
	// ErrTripNotPendingConfirm is returned when closing a trip that has not
	// finished all of its deliveries yet.
	ErrTripNotPendingConfirm = errors.New("trip is not pending store confirmation")
)

// Trip represents a batch of up to three same-route orders assigned to one
// delivery partner for a single delivery run. It is an aggregate root.
//
// Invariants:
//   - The order set holds between 1 and MaxOrders entries
//   - The order set is immutable once the trip is created
//   - All constituent orders share the trip's route key (enforced by the
//     batching service that loads the orders)
//   - Status follows the BatchAssigned -> PendingStoreConfirm -> Closed table
//
// Trip identifiers are random UUIDs, so concurrent batch creation cannot
// collide the way time-derived identifiers can.
type Trip struct {
	// id uniquely identifies the trip
	id kernel.UUID
	// partnerID identifies the delivery partner executing the trip
	partnerID kernel.UUID
	// routeKey is the delivery zone shared by every order in the trip
	routeKey kernel.RouteKey
	// orderIDs is the ordered, immutable set of constituent orders
	orderIDs []kernel.UUID
	// status is the current state in the trip lifecycle
	status Status
	// createdAt records when the batch was formed
	createdAt time.Time
	// isConstructed ensures the trip was created via a constructor
	isConstructed bool
}

// NewTrip creates a trip in BatchAssigned status for the given partner,
// route and order set.
//
// Business rules:
//   - 1 <= len(orderIDs) <= MaxOrders
//   - partner and every order id must be valid
//   - the route key must be valid
//
// Route compatibility of the constituent orders is the batching service's
// responsibility; the trip only records the agreed route.
func NewTrip(
	id kernel.UUID,
	partnerID kernel.UUID,
	routeKey kernel.RouteKey,
	orderIDs []kernel.UUID,
) (*Trip, error) {
	t := &Trip{
		status:        BatchAssigned,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setPartnerID(partnerID),
		t.setRouteKey(routeKey),
		t.setOrderIDs(orderIDs),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip reconstructs a Trip aggregate from persistent storage.
func RestoreTrip(
	id kernel.UUID,
	partnerID kernel.UUID,
	routeKey kernel.RouteKey,
	orderIDs []kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Trip, error) {
	t, err := NewTrip(id, partnerID, routeKey, orderIDs)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	t.createdAt = createdAt
	return t, nil
}

// Validate ensures the Trip instance was properly constructed.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// PartnerID returns the identifier of the executing delivery partner.
func (t *Trip) PartnerID() kernel.UUID {
	return t.partnerID
}

// RouteKey returns the delivery zone shared by the trip's orders.
func (t *Trip) RouteKey() kernel.RouteKey {
	return t.routeKey
}

// OrderIDs returns the ordered set of constituent order identifiers.
// The returned slice must not be mutated.
func (t *Trip) OrderIDs() []kernel.UUID {
	return t.orderIDs
}

// Status returns the current status of the trip.
func (t *Trip) Status() Status {
	return t.status
}

// CreatedAt returns when the batch was formed.
func (t *Trip) CreatedAt() time.Time {
	return t.createdAt
}

// IsClosed reports whether the trip reached its terminal state.
func (t *Trip) IsClosed() bool {
	return t.status.IsClosed()
}

// MarkDeliveriesComplete advances the trip to PendingStoreConfirm.
// Called by the completion check once every constituent order is delivered.
// Calling it on a trip already past BatchAssigned returns an error so the
// caller can treat the re-invocation as a no-op.
func (t *Trip) MarkDeliveriesComplete() error {
	next, err := t.status.TransitionTo(PendingStoreConfirm)
	if err != nil {
		return err
	}

	t.status = next
	return nil
}

// Close moves the trip to its terminal Closed status.
// Only legal from PendingStoreConfirm; the store-return code validation
// happens in the application layer before this is called.
func (t *Trip) Close() error {
	if t.status != PendingStoreConfirm {
		return ErrTripNotPendingConfirm
	}

	next, err := t.status.TransitionTo(Closed)
	if err != nil {
		return err
	}

	t.status = next
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.partnerID = id
	return nil
}

func (t *Trip) setRouteKey(routeKey kernel.RouteKey) error {
	if err := routeKey.Validate(); err != nil {
		return err
	}
	t.routeKey = routeKey
	return nil
}

func (t *Trip) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrNoOrders
	}
	if len(orderIDs) > MaxOrders {
		return errs.NewValueIsOutOfRangeError("orders", len(orderIDs), 1, MaxOrders)
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	t.orderIDs = append([]kernel.UUID(nil), orderIDs...)
	return nil
}
