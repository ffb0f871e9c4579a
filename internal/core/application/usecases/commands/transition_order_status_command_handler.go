package commands

import (
	"context"
	"fmt"
	"time"

	"grocery/internal/core/ports"
)

// TransitionOrderStatusCommandHandler applies a validated lifecycle
// transition to a single order and appends a status-update audit record.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditLog
}

// NewTransitionOrderStatusCommandHandler creates a handler for order status transitions.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.AuditLog,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle loads the order, performs the transition and persists the result.
// Illegal transitions surface as validation errors with no write.
func (h TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.TransitionTo(cmd.NewStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.ActorID().String(),
		Role:      cmd.Role(),
		Action:    "STATUS_UPDATE",
		Reason:    fmt.Sprintf("Order %s status changed to %s.", o.ID(), o.Status()),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
