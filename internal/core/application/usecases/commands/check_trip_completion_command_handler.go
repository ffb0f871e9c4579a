package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/trip"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// CheckTripCompletionCommandHandler declares a trip's deliveries complete
// only when every constituent order is exactly Delivered. It is a strict
// all-or-nothing AND over the order set: one straggler leaves the trip
// status unchanged.
//
// The handler is idempotent. A missing trip and a trip already past
// BatchAssigned are both silent no-ops, so sweep jobs can re-invoke it
// freely.
type CheckTripCompletionCommandHandler struct {
	uowFactory UoWFactory
	audit      ports.AuditLog
}

// NewCheckTripCompletionCommandHandler creates a handler for completion checks.
func NewCheckTripCompletionCommandHandler(uowFactory UoWFactory, audit ports.AuditLog) CheckTripCompletionCommandHandler {
	return CheckTripCompletionCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle reads the trip and the current status of every constituent order,
// advancing the trip to PendingStoreConfirm when all are Delivered.
func (h CheckTripCompletionCommandHandler) Handle(ctx context.Context, cmd CheckTripCompletionCommand) error {
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

	tripRepo := uow.TripRepository()

	t, err := tripRepo.Get(ctx, cmd.TripID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	// Already advanced or closed: re-invocation is a no-op.
	if t.Status() != trip.BatchAssigned {
		return nil
	}

	orders, err := uow.OrderRepository().GetAllByIDs(ctx, t.OrderIDs())
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.Status() != order.Delivered {
			return nil
		}
	}

	if err = t.MarkDeliveriesComplete(); err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    t.PartnerID().String(),
		Role:      "Delivery",
		Action:    "TRIP_COMPLETE",
		Reason:    fmt.Sprintf("All deliveries for trip %s finished.", t.ID()),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
