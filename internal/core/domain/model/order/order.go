package order

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when placing an order with an empty cart.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrPaymentMethodIsRequired is returned when placing an order without a payment method.
	ErrPaymentMethodIsRequired = errs.NewValueIsRequiredError("paymentMethod")
	// ErrAddressIsRequired is returned when placing an order without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrOrderAlreadyClaimed is returned when a picker tries to claim an order
	// that has already left the Placed status.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed by a picker")
	// ErrFulfillmentNotAllowed is returned when recording fulfillment outside
	// of the Packing stage.
	ErrFulfillmentNotAllowed = errors.New("fulfillment can only be recorded while packing")
)

// Order represents a customer's grocery order. It is the aggregate root that
// manages the order lifecycle from placement through picking and batching
// to delivery and closure.
//
// Order maintains these invariants:
//   - Must have valid order and customer identifiers
//   - Must have a non-empty cart and payment method
//   - Status transitions follow the lifecycle table in Status
//   - The requested item list is never overwritten; partial fulfillment is
//     recorded in a separate fulfilled list
//   - paymentConfirmed only moves from false to true, never back
//
// Private fields keep the aggregate encapsulated; state changes go through
// validated methods only.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// pickerID is the claiming picker's ID (nil until claimed)
	pickerID *kernel.UUID

	// address and pincode describe the delivery destination
	address string
	pincode string

	// routeKey is the coarse delivery zone derived from the pincode
	routeKey kernel.RouteKey

	// requestedItems is the cart as placed by the customer, never mutated
	requestedItems []Item

	// fulfilledItems is the subset actually packed; nil until a partial
	// fulfillment is recorded
	fulfilledItems []Item

	// status is the current state in the order lifecycle
	status Status

	// paymentMethod names how the customer pays, e.g. "COD"
	paymentMethod string

	// paymentConfirmed records whether payment was received
	paymentConfirmed bool

	// notes carries human-readable annotations such as fulfillment reasons
	notes string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Placed status. This is the only way to
// place a fresh order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: identifier of the placing customer
//   - address: delivery street address (non-empty)
//   - pincode: delivery pincode; used to derive the route key, may be empty
//   - items: the requested cart (at least one item)
//   - paymentMethod: payment method label (non-empty)
//
// The route key is derived from the pincode, falling back to the default
// route when the pincode is blank.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	pincode string,
	items []Item,
	paymentMethod string,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		routeKey:      kernel.RouteKeyForPincode(pincode),
		pincode:       pincode,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it accepts the full persisted state including status,
// picker assignment, fulfillment and payment flags. The restored order
// behaves identically to one built through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	pincode string,
	routeKey kernel.RouteKey,
	requestedItems []Item,
	fulfilledItems []Item,
	status Status,
	pickerID *kernel.UUID,
	paymentMethod string,
	paymentConfirmed bool,
	notes string,
) (*Order, error) {
	o := &Order{
		fulfilledItems:   fulfilledItems,
		pincode:          pincode,
		paymentConfirmed: paymentConfirmed,
		notes:            notes,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setItems(requestedItems),
		o.setPaymentMethod(paymentMethod),
		o.setRouteKey(routeKey),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if pickerID != nil {
		if err := pickerID.Validate(); err != nil {
			return nil, err
		}
		o.pickerID = pickerID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Picker returns the claiming picker's ID, or nil before any claim.
func (o *Order) Picker() *kernel.UUID {
	return o.pickerID
}

// Address returns the delivery street address.
func (o *Order) Address() string {
	return o.address
}

// Pincode returns the delivery pincode.
func (o *Order) Pincode() string {
	return o.pincode
}

// RouteKey returns the delivery zone the order belongs to.
func (o *Order) RouteKey() kernel.RouteKey {
	return o.routeKey
}

// Items returns the cart as requested by the customer.
// The returned slice must not be mutated.
func (o *Order) Items() []Item {
	return o.requestedItems
}

// FulfilledItems returns the items actually packed, or nil when the order
// was (or will be) fulfilled in full.
func (o *Order) FulfilledItems() []Item {
	return o.fulfilledItems
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the payment method label.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentConfirmed reports whether payment has been received.
func (o *Order) PaymentConfirmed() bool {
	return o.paymentConfirmed
}

// Notes returns human-readable annotations attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// TransitionTo moves the order to newStatus, enforcing the lifecycle table.
//
// Returns an error when the move is not the single legal successor of the
// current status. Claiming is the exception: it also stamps the picker and
// must go through Claim instead.
func (o *Order) TransitionTo(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Claim assigns the order to a picker and moves it to WaitingForPicker.
// The status change and the picker stamp are one combined operation.
//
// Business rules:
//   - The picker ID must be valid
//   - The order must still be in Placed status; a second claim fails
//     with ErrOrderAlreadyClaimed
func (o *Order) Claim(pickerID kernel.UUID) error {
	if err := pickerID.Validate(); err != nil {
		return err
	}

	if o.status != Placed {
		return ErrOrderAlreadyClaimed
	}

	next, err := o.status.TransitionTo(WaitingForPicker)
	if err != nil {
		return err
	}

	o.status = next
	o.pickerID = &pickerID
	return nil
}

// RecordFulfillment records a partial fulfillment of the cart.
// The requested item list is retained untouched; the packed subset is stored
// separately so the delta stays available for refunds and reconciliation.
//
// Business rules:
//   - Only legal while the order is in Packing status
//   - Every fulfilled line must reference a requested item and must not
//     exceed the requested quantity
//   - A human-readable note with the reason is appended to the order
func (o *Order) RecordFulfillment(fulfilled []Item, reason string) error {
	if o.status != Packing {
		return ErrFulfillmentNotAllowed
	}
	if len(fulfilled) == 0 {
		return ErrItemsAreRequired
	}

	requested := make(map[string]int, len(o.requestedItems))
	for _, item := range o.requestedItems {
		requested[item.ID()] = item.Quantity()
	}

	for _, item := range fulfilled {
		if err := item.Validate(); err != nil {
			return err
		}
		qty, ok := requested[item.ID()]
		if !ok {
			return errs.NewValueIsInvalidErrorWithCause("fulfilledItems",
				fmt.Errorf("item %s was not requested", item.ID()))
		}
		if item.Quantity() > qty {
			return errs.NewValueIsOutOfRangeError("fulfilledQuantity", item.Quantity(), 1, qty)
		}
	}

	o.fulfilledItems = fulfilled
	o.notes = fmt.Sprintf("Partially fulfilled. Reason: %s", reason)
	return nil
}

// ConfirmPayment marks the order's payment as received.
// The flag only moves from false to true; confirming twice is a no-op.
func (o *Order) ConfirmPayment() {
	o.paymentConfirmed = true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.requestedItems = items
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setRouteKey(routeKey kernel.RouteKey) error {
	if err := routeKey.Validate(); err != nil {
		return err
	}
	o.routeKey = routeKey
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
