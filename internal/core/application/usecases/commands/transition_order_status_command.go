package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var (
	ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
		"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
	)
	ErrRoleIsRequired = errors.New("role is required")
)

// TransitionOrderStatusCommand moves an order to a new lifecycle status on
// behalf of an acting user. The transition table rejects any move that is
// not the single legal successor of the current status.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actorID   kernel.UUID
	role      string

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a status transition command.
// The target status must be a valid lifecycle status and the role non-empty;
// transition legality is checked against the stored order when handled.
func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actorID kernel.UUID,
	role string,
) (TransitionOrderStatusCommand, error) {
	if role == "" {
		return TransitionOrderStatusCommand{}, ErrRoleIsRequired
	}
	if err := errors.Join(orderID.Validate(), actorID.Validate(), newStatus.Validate()); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return TransitionOrderStatusCommand{
		orderID:   orderID,
		newStatus: newStatus,
		actorID:   actorID,
		role:      role,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the target lifecycle status.
func (c TransitionOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// ActorID returns the identifier of the acting user.
func (c TransitionOrderStatusCommand) ActorID() kernel.UUID { return c.actorID }

// Role returns the acting user's role label.
func (c TransitionOrderStatusCommand) Role() string { return c.role }
