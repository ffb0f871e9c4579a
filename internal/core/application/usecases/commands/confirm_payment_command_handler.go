package commands

import (
	"context"
	"fmt"
	"time"

	"grocery/internal/core/ports"
)

// ConfirmPaymentCommandHandler sets the one-way payment-confirmed flag on an order.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditLog
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory, audit ports.AuditLog) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle confirms payment on the order. Confirming an already confirmed
// order is a no-op; the flag never reverts.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	o.ConfirmPayment()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.ActorID().String(),
		Role:      "Delivery",
		Action:    "PAYMENT_CONFIRMED",
		Reason:    fmt.Sprintf("Payment received for order %s", o.ID()),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
