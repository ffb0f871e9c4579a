package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrRemoveProductCommandIsNotConstructed = errors.New(
	"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
)

// RemoveProductCommand deletes a catalog item. Orders keep their own
// snapshot of name and price, so removal never touches order history.
type RemoveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductCommand creates a catalog removal command.
func NewRemoveProductCommand(productID, actorID kernel.UUID) (RemoveProductCommand, error) {
	if err := errors.Join(productID.Validate(), actorID.Validate()); err != nil {
		return RemoveProductCommand{}, err
	}

	return RemoveProductCommand{
		productID: productID,
		actorID:   actorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to remove.
func (c RemoveProductCommand) ProductID() kernel.UUID { return c.productID }

// ActorID returns the identifier of the admin removing the product.
func (c RemoveProductCommand) ActorID() kernel.UUID { return c.actorID }
