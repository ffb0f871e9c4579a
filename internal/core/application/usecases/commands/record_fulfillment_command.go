package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var (
	ErrRecordFulfillmentCommandIsNotConstructed = errors.New(
		"RecordFulfillmentCommand must be created via NewRecordFulfillmentCommand constructor",
	)
	ErrReasonIsRequired = errors.New("fulfillment reason is required")
)

// RecordFulfillmentCommand records that a picker could only pack part of the
// requested cart. The packed subset replaces nothing: the original request is
// kept alongside it for reconciliation and refunds.
type RecordFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	pickerID  kernel.UUID
	fulfilled []order.Item
	reason    string

	guard guard.ConstructorGuard
}

// NewRecordFulfillmentCommand creates a partial-fulfillment command.
// A human-readable reason is mandatory; the fulfilled set is validated
// against the stored order when handled.
func NewRecordFulfillmentCommand(
	orderID kernel.UUID,
	pickerID kernel.UUID,
	fulfilled []order.Item,
	reason string,
) (RecordFulfillmentCommand, error) {
	if reason == "" {
		return RecordFulfillmentCommand{}, ErrReasonIsRequired
	}
	if err := errors.Join(orderID.Validate(), pickerID.Validate()); err != nil {
		return RecordFulfillmentCommand{}, err
	}

	return RecordFulfillmentCommand{
		orderID:   orderID,
		pickerID:  pickerID,
		fulfilled: fulfilled,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordFulfillmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the partially fulfilled order.
func (c RecordFulfillmentCommand) OrderID() kernel.UUID { return c.orderID }

// PickerID returns the identifier of the reporting picker.
func (c RecordFulfillmentCommand) PickerID() kernel.UUID { return c.pickerID }

// Fulfilled returns the items that were actually packed.
func (c RecordFulfillmentCommand) Fulfilled() []order.Item { return c.fulfilled }

// Reason returns the human-readable explanation for the shortfall.
func (c RecordFulfillmentCommand) Reason() string { return c.reason }
