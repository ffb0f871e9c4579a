package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand triggers one cycle of the picker assignment watcher:
// take the oldest Placed order and claim it for the given picker.
// Each invocation consumes at most one order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	pickerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim a pending order for a picker.
func NewClaimOrderCommand(pickerID kernel.UUID) (ClaimOrderCommand, error) {
	if err := pickerID.Validate(); err != nil {
		return ClaimOrderCommand{}, err
	}

	return ClaimOrderCommand{
		pickerID: pickerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// PickerID returns the identifier of the claiming picker.
func (c ClaimOrderCommand) PickerID() kernel.UUID { return c.pickerID }
