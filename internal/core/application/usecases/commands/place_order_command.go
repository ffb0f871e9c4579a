package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request to place a new grocery order.
// Encapsulates the cart, delivery address and payment method.
//
// Example:
//
//	items := []order.Item{item1, item2}
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, "12 Market Rd", "110043", items, "COD")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	address       string
	pincode       string
	items         []order.Item
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Identifier, address, cart and payment method are validated by the Order
// constructor when the command is handled; here only identifiers are checked.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	address string,
	pincode string,
	items []order.Item,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderID:       orderID,
		customerID:    customerID,
		address:       address,
		pincode:       pincode,
		items:         items,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the identifier of the placing customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Address returns the delivery street address.
func (c PlaceOrderCommand) Address() string { return c.address }

// Pincode returns the delivery pincode.
func (c PlaceOrderCommand) Pincode() string { return c.pincode }

// Items returns the requested cart.
func (c PlaceOrderCommand) Items() []order.Item { return c.items }

// PaymentMethod returns the payment method label.
func (c PlaceOrderCommand) PaymentMethod() string { return c.paymentMethod }
