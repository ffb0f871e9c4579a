package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrSetPartnerShiftCommandIsNotConstructed = errors.New(
	"SetPartnerShiftCommand must be created via NewSetPartnerShiftCommand constructor",
)

// SetPartnerShiftCommand toggles a delivery partner's on-duty flag.
type SetPartnerShiftCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	shiftOn   bool

	guard guard.ConstructorGuard
}

// NewSetPartnerShiftCommand creates a shift toggle command.
func NewSetPartnerShiftCommand(partnerID kernel.UUID, shiftOn bool) (SetPartnerShiftCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return SetPartnerShiftCommand{}, err
	}

	return SetPartnerShiftCommand{
		partnerID: partnerID,
		shiftOn:   shiftOn,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartnerShiftCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerShiftCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner toggling their shift.
func (c SetPartnerShiftCommand) PartnerID() kernel.UUID { return c.partnerID }

// ShiftOn returns the desired on-duty state.
func (c SetPartnerShiftCommand) ShiftOn() bool { return c.shiftOn }
