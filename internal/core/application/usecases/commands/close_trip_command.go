package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var (
	ErrCloseTripCommandIsNotConstructed = errors.New(
		"CloseTripCommand must be created via NewCloseTripCommand constructor",
	)
	ErrReturnCodeIsRequired = errors.New("store return code is required")
)

// CloseTripCommand confirms the delivery partner's physical return to the
// store, closing the trip and freeing the partner. The supplied code must
// match the configured store-return code exactly.
type CloseTripCommand struct { //nolint:recvcheck //using for validation
	tripID     kernel.UUID
	partnerID  kernel.UUID
	returnCode string

	guard guard.ConstructorGuard
}

// NewCloseTripCommand creates a trip closure command.
func NewCloseTripCommand(tripID, partnerID kernel.UUID, returnCode string) (CloseTripCommand, error) {
	if returnCode == "" {
		return CloseTripCommand{}, ErrReturnCodeIsRequired
	}
	if err := errors.Join(tripID.Validate(), partnerID.Validate()); err != nil {
		return CloseTripCommand{}, err
	}

	return CloseTripCommand{
		tripID:     tripID,
		partnerID:  partnerID,
		returnCode: returnCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseTripCommand) Validate() error {
	return c.guard.Validate(ErrCloseTripCommandIsNotConstructed)
}

// TripID returns the identifier of the trip to close.
func (c CloseTripCommand) TripID() kernel.UUID { return c.tripID }

// PartnerID returns the identifier of the returning partner.
func (c CloseTripCommand) PartnerID() kernel.UUID { return c.partnerID }

// ReturnCode returns the code presented by the partner.
func (c CloseTripCommand) ReturnCode() string { return c.returnCode }
