package commands

import (
	"context"
	"fmt"
	"time"

	"grocery/internal/core/ports"
)

// RecordFulfillmentCommandHandler persists a picker's partial-fulfillment
// report against an order in Packing status.
type RecordFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditLog
}

// NewRecordFulfillmentCommandHandler creates a handler for partial fulfillment reports.
func NewRecordFulfillmentCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.AuditLog,
) RecordFulfillmentCommandHandler {
	return RecordFulfillmentCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle loads the order, records the packed subset and reason, and persists
// the result. The requested cart stays untouched.
func (h RecordFulfillmentCommandHandler) Handle(ctx context.Context, cmd RecordFulfillmentCommand) error {
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

	if err = o.RecordFulfillment(cmd.Fulfilled(), cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.PickerID().String(),
		Role:      "Picker",
		Action:    "PARTIAL_FULFILLMENT",
		Reason:    fmt.Sprintf("Order %s: %s", o.ID(), cmd.Reason()),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
