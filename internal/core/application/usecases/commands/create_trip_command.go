package commands

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrCreateTripCommandIsNotConstructed = errors.New(
	"CreateTripCommand must be created via NewCreateTripCommand constructor",
)

// CreateTripCommand batches the selected packed orders into one delivery trip
// for a partner. Selection sequence is preserved: the first order's route
// becomes the batch route.
//
// Example:
//
//	cmd, err := NewCreateTripCommand([]kernel.UUID{o1, o2, o3}, partnerID, adminID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrRouteMismatch) {
//	    // selection spans two zones, nothing was written
//	}
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	orderIDs  []kernel.UUID
	partnerID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateTripCommand creates a trip creation command.
// Batch size and route compatibility are validated by the batching service
// when the command is handled; here the identifiers are checked and a
// selection naming the same order twice is rejected outright.
func NewCreateTripCommand(
	orderIDs []kernel.UUID,
	partnerID kernel.UUID,
	actorID kernel.UUID,
) (CreateTripCommand, error) {
	err := errors.Join(partnerID.Validate(), actorID.Validate())
	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		err = errors.Join(err, id.Validate())
		if _, dup := seen[id]; dup {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("orderIds",
				fmt.Errorf("order %s is selected more than once", id)))
		}
		seen[id] = struct{}{}
	}
	if err != nil {
		return CreateTripCommand{}, err
	}

	return CreateTripCommand{
		orderIDs:  orderIDs,
		partnerID: partnerID,
		actorID:   actorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

// OrderIDs returns the selected order identifiers in selection sequence.
func (c CreateTripCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

// PartnerID returns the identifier of the delivery partner to dispatch.
func (c CreateTripCommand) PartnerID() kernel.UUID { return c.partnerID }

// ActorID returns the identifier of the dispatching admin.
func (c CreateTripCommand) ActorID() kernel.UUID { return c.actorID }
