// Package product contains the catalog item aggregate. Products are what
// customers browse and put in a cart; orders capture a snapshot of name and
// price at placement time, so editing a product never rewrites past orders.
package product

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// Domain errors for catalog product operations.
var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrNameIsRequired is returned when creating a product without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsRequired is returned when creating a product without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
	// ErrUnitLabelIsRequired is returned when creating a product without a unit label.
	ErrUnitLabelIsRequired = errs.NewValueIsRequiredError("unitLabel")
	// ErrInsufficientStock is returned when a stock adjustment would push the
	// available quantity below zero.
	ErrInsufficientStock = errors.New("available quantity cannot go below zero")
)

// Product represents one catalog item managed by the store admin.
//
// Business rules:
//   - Price is stored in minor currency units and is never negative
//   - Available quantity is never negative
//   - A product with zero available quantity stays in the catalog but is
//     shown as out of stock
//   - Only active products appear on the customer catalog
type Product struct {
	// id uniquely identifies the product; cart lines reference its string form
	id kernel.UUID
	// name is the customer-facing display name
	name string
	// category groups products on the catalog screen
	category string
	// unitLabel names the selling unit, e.g. "1L", "500g pack"
	unitLabel string
	// price is the unit price in minor currency units
	price int64
	// availableQty is the sellable stock on hand
	availableQty int
	// newlyLaunched marks the product for the newly-launched shelf
	newlyLaunched bool
	// active reports whether the product is visible to customers
	active bool
	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new active catalog product.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - name: display name (non-empty)
//   - category: catalog category (non-empty)
//   - unitLabel: selling unit label (non-empty)
//   - price: unit price in minor currency units (non-negative)
//   - availableQty: initial stock (non-negative)
//   - newlyLaunched: whether to show the newly-launched badge
func NewProduct(
	id kernel.UUID,
	name string,
	category string,
	unitLabel string,
	price int64,
	availableQty int,
	newlyLaunched bool,
) (*Product, error) {
	p := &Product{
		newlyLaunched: newlyLaunched,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setUnitLabel(unitLabel),
		p.setPrice(price),
		p.setAvailableQty(availableQty),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage,
// including its active flag.
func RestoreProduct(
	id kernel.UUID,
	name string,
	category string,
	unitLabel string,
	price int64,
	availableQty int,
	newlyLaunched bool,
	active bool,
) (*Product, error) {
	p, err := NewProduct(id, name, category, unitLabel, price, availableQty, newlyLaunched)
	if err != nil {
		return nil, err
	}

	p.active = active
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the customer-facing display name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the catalog category.
func (p *Product) Category() string {
	return p.category
}

// UnitLabel returns the selling unit label.
func (p *Product) UnitLabel() string {
	return p.unitLabel
}

// Price returns the unit price in minor currency units.
func (p *Product) Price() int64 {
	return p.price
}

// AvailableQty returns the sellable stock on hand.
func (p *Product) AvailableQty() int {
	return p.availableQty
}

// NewlyLaunched reports whether the product carries the newly-launched badge.
func (p *Product) NewlyLaunched() bool {
	return p.newlyLaunched
}

// Active reports whether the product is visible to customers.
func (p *Product) Active() bool {
	return p.active
}

// IsOutOfStock reports whether the product has no sellable stock left.
func (p *Product) IsOutOfStock() bool {
	return p.availableQty <= 0
}

// UpdateDetails replaces the editable attributes from the admin item form.
// Stock and visibility are managed through SetStock and SetActive.
func (p *Product) UpdateDetails(name, category, unitLabel string, price int64) error {
	return errors.Join(
		p.setName(name),
		p.setCategory(category),
		p.setUnitLabel(unitLabel),
		p.setPrice(price),
	)
}

// SetStock replaces the available quantity, e.g. after a restock count.
func (p *Product) SetStock(qty int) error {
	return p.setAvailableQty(qty)
}

// AdjustStock applies a relative stock change. A negative delta larger than
// the stock on hand fails with ErrInsufficientStock and changes nothing.
func (p *Product) AdjustStock(delta int) error {
	next := p.availableQty + delta
	if next < 0 {
		return fmt.Errorf("%w: have %d, requested change %d", ErrInsufficientStock, p.availableQty, delta)
	}

	p.availableQty = next
	return nil
}

// SetNewlyLaunched toggles the newly-launched badge.
func (p *Product) SetNewlyLaunched(newlyLaunched bool) {
	p.newlyLaunched = newlyLaunched
}

// SetActive toggles customer visibility without deleting the product.
func (p *Product) SetActive(active bool) {
	p.active = active
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	p.category = category
	return nil
}

func (p *Product) setUnitLabel(unitLabel string) error {
	if unitLabel == "" {
		return ErrUnitLabelIsRequired
	}
	p.unitLabel = unitLabel
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setAvailableQty(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("availableQty",
			fmt.Errorf("%d is negative", qty))
	}
	p.availableQty = qty
	return nil
}
