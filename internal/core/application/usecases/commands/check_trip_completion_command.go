package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrCheckTripCompletionCommandIsNotConstructed = errors.New(
	"CheckTripCompletionCommand must be created via NewCheckTripCompletionCommand constructor",
)

// CheckTripCompletionCommand asks whether every order in a trip has been
// delivered, and advances the trip to PendingStoreConfirm when so.
// The check is idempotent and safe to re-run on any trip.
type CheckTripCompletionCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckTripCompletionCommand creates a completion check command for a trip.
func NewCheckTripCompletionCommand(tripID kernel.UUID) (CheckTripCompletionCommand, error) {
	if err := tripID.Validate(); err != nil {
		return CheckTripCompletionCommand{}, err
	}

	return CheckTripCompletionCommand{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckTripCompletionCommand) Validate() error {
	return c.guard.Validate(ErrCheckTripCompletionCommandIsNotConstructed)
}

// TripID returns the identifier of the trip to check.
func (c CheckTripCompletionCommand) TripID() kernel.UUID { return c.tripID }
