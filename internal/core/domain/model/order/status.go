package order

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the lifecycle state of a grocery order.
// It implements a state machine with a fixed forward-only transition table,
// so orders always follow the fulfillment workflow in order:
//
//	Placed ──> WaitingForPicker ──> Packing ──> Packed ──> BatchAssigned
//	       ──> OutForDelivery ──> Delivered ──> Closed
//
// No backward transitions exist. Closed is the terminal state.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a customer submits an order.
	// Orders in this status are waiting to be claimed by a picker.
	Placed

	// WaitingForPicker indicates a picker has claimed the order
	// but has not started packing it yet.
	WaitingForPicker

	// Packing indicates the picker is actively collecting the order's items.
	Packing

	// Packed indicates all items (or a recorded partial set) are packed
	// and the order is ready to be batched into a delivery trip.
	Packed

	// BatchAssigned indicates the order has been grouped into a delivery
	// trip together with up to two other same-route orders.
	BatchAssigned

	// OutForDelivery indicates the delivery partner is en route with the order.
	OutForDelivery

	// Delivered indicates the customer has received the order.
	Delivered

	// Closed indicates the trip containing the order was confirmed back
	// at the store. This is the final state with no further transitions.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Placed:           "PLACED",
		WaitingForPicker: "WAITING_FOR_PICKER",
		Packing:          "PACKING",
		Packed:           "PACKED",
		BatchAssigned:    "BATCH_ASSIGNED",
		OutForDelivery:   "OUT_FOR_DELIVERY",
		Delivered:        "DELIVERED",
		Closed:           "CLOSED",
	}
}

// getStatusTransitions returns the allowed next status for every
// non-terminal status. The lifecycle is strictly linear, so each
// status has exactly one legal successor.
func getStatusTransitions() map[Status]Status {
	return map[Status]Status{
		Placed:           WaitingForPicker,
		WaitingForPicker: Packing,
		Packing:          Packed,
		Packed:           BatchAssigned,
		BatchAssigned:    OutForDelivery,
		OutForDelivery:   Delivered,
		Delivered:        Closed,
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is one of the defined lifecycle statuses
//   - error with details if the status is Unknown or out of range
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PLACED".
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition. Backward moves and skipped stages are illegal.
func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := getStatusTransitions()[s]
	return ok && allowed == next
}

// TransitionTo performs the transition from s to next.
//
// Returns:
//   - (next, nil) when the transition is legal
//   - (0, error) when next is invalid or the move is not allowed from s
//
// This method is used by Order.TransitionTo to enforce the state machine.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("transition from %s to %s is not allowed", s, next))
	}
	return next, nil
}

// IsActive reports whether the order still needs attention from staff.
// Delivered and Closed orders are no longer active.
func (s Status) IsActive() bool {
	return s != Delivered && s != Closed && s != Unknown
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Closed
}
