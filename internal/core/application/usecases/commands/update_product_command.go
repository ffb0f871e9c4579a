package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces a catalog item's editable attributes, stock
// and visibility in one edit, matching the admin item form which always
// submits the full row.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	category      string
	unitLabel     string
	price         int64
	availableQty  int
	newlyLaunched bool
	active        bool
	actorID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a catalog edit command.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	category string,
	unitLabel string,
	price int64,
	availableQty int,
	newlyLaunched bool,
	active bool,
	actorID kernel.UUID,
) (UpdateProductCommand, error) {
	if err := errors.Join(productID.Validate(), actorID.Validate()); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:     productID,
		name:          name,
		category:      category,
		unitLabel:     unitLabel,
		price:         price,
		availableQty:  availableQty,
		newlyLaunched: newlyLaunched,
		active:        active,
		actorID:       actorID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to edit.
func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the new display name.
func (c UpdateProductCommand) Name() string { return c.name }

// Category returns the new catalog category.
func (c UpdateProductCommand) Category() string { return c.category }

// UnitLabel returns the new selling unit label.
func (c UpdateProductCommand) UnitLabel() string { return c.unitLabel }

// Price returns the new unit price in minor currency units.
func (c UpdateProductCommand) Price() int64 { return c.price }

// AvailableQty returns the new stock count.
func (c UpdateProductCommand) AvailableQty() int { return c.availableQty }

// NewlyLaunched returns the new newly-launched badge state.
func (c UpdateProductCommand) NewlyLaunched() bool { return c.newlyLaunched }

// Active returns the new customer visibility state.
func (c UpdateProductCommand) Active() bool { return c.active }

// ActorID returns the identifier of the admin editing the product.
func (c UpdateProductCommand) ActorID() kernel.UUID { return c.actorID }
