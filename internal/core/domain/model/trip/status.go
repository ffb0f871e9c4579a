package trip

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery trip.
//
// State transitions:
//
//	BatchAssigned ──> PendingStoreConfirm ──> Closed
//
// A trip is created in BatchAssigned, advances to PendingStoreConfirm when
// every constituent order is delivered, and closes after the delivery partner
// confirms physical return to the store. Closed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// BatchAssigned is the initial status: orders are batched and the
	// partner is dispatched.
	BatchAssigned

	// PendingStoreConfirm indicates every order in the trip has been
	// delivered and the partner is returning to the store.
	PendingStoreConfirm

	// Closed indicates store return was confirmed and the partner is freed.
	// This is the final state.
	Closed
)

// getStatusStrings returns a map of Status values to their persisted names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		BatchAssigned:       "BATCH_ASSIGNED",
		PendingStoreConfirm: "TRIP_COMPLETED_PENDING_STORE_CONFIRM",
		Closed:              "CLOSED",
	}
}

// getStatusTransitions returns the single legal successor for each
// non-terminal status.
func getStatusTransitions() map[Status]Status {
	return map[Status]Status{
		BatchAssigned:       PendingStoreConfirm,
		PendingStoreConfirm: Closed,
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid trip status", s))
	}
	return nil
}

// String returns the persisted name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := getStatusTransitions()[s]
	return ok && allowed == next
}

// TransitionTo performs the transition from s to next.
//
// Returns:
//   - (next, nil) when the transition is legal
//   - (0, error) when next is invalid or not allowed from s
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("trip transition from %s to %s is not allowed", s, next))
	}
	return next, nil
}

// IsClosed reports whether the trip reached its terminal state.
func (s Status) IsClosed() bool {
	return s == Closed
}
