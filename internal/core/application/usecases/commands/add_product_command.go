package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand puts a new item on the catalog. Attribute rules such as
// non-empty name and non-negative price are enforced by the Product
// constructor when the command is handled.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	category      string
	unitLabel     string
	price         int64
	availableQty  int
	newlyLaunched bool
	actorID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a catalog addition command.
func NewAddProductCommand(
	productID kernel.UUID,
	name string,
	category string,
	unitLabel string,
	price int64,
	availableQty int,
	newlyLaunched bool,
	actorID kernel.UUID,
) (AddProductCommand, error) {
	if err := errors.Join(productID.Validate(), actorID.Validate()); err != nil {
		return AddProductCommand{}, err
	}

	return AddProductCommand{
		productID:     productID,
		name:          name,
		category:      category,
		unitLabel:     unitLabel,
		price:         price,
		availableQty:  availableQty,
		newlyLaunched: newlyLaunched,
		actorID:       actorID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c AddProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the display name.
func (c AddProductCommand) Name() string { return c.name }

// Category returns the catalog category.
func (c AddProductCommand) Category() string { return c.category }

// UnitLabel returns the selling unit label.
func (c AddProductCommand) UnitLabel() string { return c.unitLabel }

// Price returns the unit price in minor currency units.
func (c AddProductCommand) Price() int64 { return c.price }

// AvailableQty returns the initial stock.
func (c AddProductCommand) AvailableQty() int { return c.availableQty }

// NewlyLaunched returns whether the product gets the newly-launched badge.
func (c AddProductCommand) NewlyLaunched() bool { return c.newlyLaunched }

// ActorID returns the identifier of the admin adding the product.
func (c AddProductCommand) ActorID() kernel.UUID { return c.actorID }
