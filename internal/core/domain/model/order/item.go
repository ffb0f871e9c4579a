package order

import (
	"errors"
	"fmt"

	"grocery/internal/pkg/errs"
)

// Domain errors for item construction.
var (
	// ErrItemIDIsRequired is returned when creating an item without an id.
	ErrItemIDIsRequired = errs.NewValueIsRequiredError("itemId")
	// ErrItemNameIsRequired is returned when creating an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
)

// Item is a value object describing one line of an order's cart:
// the inventory item, its unit price at order time, and the quantity requested.
//
// Price is stored in minor currency units (paise) to avoid floating point
// rounding in totals. Item is immutable once constructed.
type Item struct {
	id       string
	name     string
	price    int64
	quantity int
}

// NewItem creates an order line item.
//
// Parameters:
//   - id: inventory item identifier (non-empty)
//   - name: display name captured at order time (non-empty)
//   - price: unit price in minor currency units (non-negative)
//   - quantity: units requested (positive)
//
// Returns a validation error when any parameter is out of range.
func NewItem(id, name string, price int64, quantity int) (Item, error) {
	var err error
	if id == "" {
		err = errors.Join(err, ErrItemIDIsRequired)
	}
	if name == "" {
		err = errors.Join(err, ErrItemNameIsRequired)
	}
	if price < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price)))
	}
	if quantity <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err != nil {
		return Item{}, err
	}

	return Item{id: id, name: name, price: price, quantity: quantity}, nil
}

// ID returns the inventory item identifier.
func (i Item) ID() string {
	return i.id
}

// Name returns the item name captured at order time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price in minor currency units.
func (i Item) Price() int64 {
	return i.price
}

// Quantity returns the number of units.
func (i Item) Quantity() int {
	return i.quantity
}

// Validate checks that the item carries an id, name and positive quantity.
func (i Item) Validate() error {
	if i.id == "" || i.name == "" || i.quantity <= 0 {
		return errs.NewValueIsInvalidError("item")
	}
	return nil
}
