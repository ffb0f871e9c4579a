package commands

import (
	"context"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Creates the order in Placed status, appends an audit record and notifies
// the picker role that work is waiting.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditLog
	notifier   ports.Notifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.AuditLog,
	notifier ports.Notifier,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
// The route key is derived from the delivery pincode inside the Order
// constructor. The audit append and notification run after commit and are
// best-effort.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Address(),
		cmd.Pincode(),
		cmd.Items(),
		cmd.PaymentMethod(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.CustomerID().String(),
		Role:      "Customer",
		Action:    "ORDER_PLACED",
		Reason:    fmt.Sprintf("Order %s placed.", newOrder.ID()),
		Timestamp: time.Now().UTC(),
	})
	h.notifier.Notify(ctx, "Picker", fmt.Sprintf("New order %s is waiting for a picker.", newOrder.ID()))

	return nil
}
