package services

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/partner"
	"grocery/internal/core/domain/model/trip"

	"grocery/internal/pkg/errs"
)

// Batching errors surfaced to callers before any aggregate is mutated.
var (
	// ErrRouteMismatch is returned when the selected orders span more than
	// one delivery zone. The whole batch is rejected, never split.
	ErrRouteMismatch = errors.New("all orders in a batch must belong to the same route")
	// ErrOrderNotPacked is returned when a selected order is not in Packed
	// status and therefore not ready for dispatch.
	ErrOrderNotPacked = errors.New("only packed orders can be batched into a trip")
	// ErrDuplicateOrder is returned when the same order is selected more
	// than once for a batch.
	ErrDuplicateOrder = errors.New("an order cannot appear in a batch more than once")
)

// TripBatcher is a domain service that groups packed orders into a delivery
// trip for a single partner.
//
// Business rules:
//   - A batch holds between 1 and trip.MaxOrders orders
//   - Every order must be in Packed status
//   - No order may appear in the selection twice
//   - Every order's route key must equal the first selected order's route
//     key; a mismatch rejects the whole operation with no partial batch
//   - The partner must be on shift and free; batching marks them busy
//
// Validation runs before any state changes, so a rejected batch leaves
// orders and partner untouched.
type TripBatcher struct{}

// NewTripBatcher creates a new TripBatcher instance.
func NewTripBatcher() TripBatcher {
	return TripBatcher{}
}

// Batch validates the selection and forms the trip.
//
// On success:
//   - every order transitions to BatchAssigned
//   - the partner's busy flag is set
//   - a new Trip in BatchAssigned status is returned, carrying the route of
//     the first selected order and the selection in its original sequence
//
// Returns a validation error and performs no mutation when any rule fails.
func (b TripBatcher) Batch(orders []*order.Order, deliveryPartner *partner.Partner) (*trip.Trip, error) {
	if err := deliveryPartner.Validate(); err != nil {
		return nil, err
	}

	if err := b.validateSelection(orders); err != nil {
		return nil, err
	}

	if !deliveryPartner.ShiftOn() {
		return nil, partner.ErrPartnerIsOffShift
	}
	if deliveryPartner.IsBusy() {
		return nil, partner.ErrPartnerIsBusy
	}

	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID())
	}

	newTrip, err := trip.NewTrip(kernel.NewUUID(), deliveryPartner.ID(), orders[0].RouteKey(), orderIDs)
	if err != nil {
		return nil, err
	}

	// Validation is complete: mutate the aggregates.
	if err = deliveryPartner.MarkBusy(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err = o.TransitionTo(order.BatchAssigned); err != nil {
			return nil, err
		}
	}

	return newTrip, nil
}

// validateSelection checks size, status and route compatibility of the
// selected orders without mutating anything.
func (b TripBatcher) validateSelection(orders []*order.Order) error {
	if len(orders) == 0 {
		return trip.ErrNoOrders
	}
	if len(orders) > trip.MaxOrders {
		return errs.NewValueIsOutOfRangeError("orders", len(orders), 1, trip.MaxOrders)
	}

	batchRoute := orders[0].RouteKey()
	seen := make(map[kernel.UUID]struct{}, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if _, dup := seen[o.ID()]; dup {
			return fmt.Errorf("%w: order %s", ErrDuplicateOrder, o.ID())
		}
		seen[o.ID()] = struct{}{}
		if o.Status() != order.Packed {
			return fmt.Errorf("%w: order %s is %s", ErrOrderNotPacked, o.ID(), o.Status())
		}
		if !o.RouteKey().IsEqual(batchRoute) {
			return fmt.Errorf("%w: order %s is on %s, batch is on %s",
				ErrRouteMismatch, o.ID(), o.RouteKey(), batchRoute)
		}
	}

	return nil
}
