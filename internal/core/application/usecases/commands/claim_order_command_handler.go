package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

var (
	// ErrNoOrderToClaim is returned when no order is waiting in Placed status.
	ErrNoOrderToClaim = errors.New("no order to claim")
	// ErrClaimConflict is returned when another picker claimed the order
	// between the read and the conditional write. The caller should skip
	// and re-poll.
	ErrClaimConflict = errors.New("order was claimed by another picker")
)

// ClaimOrderCommandHandler implements the picker assignment watcher's claim.
// The claim is a compare-and-set: the combined status and picker-id write
// only applies while the stored status is still Placed, so two concurrent
// watchers can never both own the same order.
//
// Example:
//
//	claimed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderToClaim):
//	    // nothing pending, poll again later
//	case errors.Is(err, ErrClaimConflict):
//	    // lost the race, poll again immediately
//	case err != nil:
//	    log.Printf("claim failed: %v", err)
//	default:
//	    startPacking(claimed)
//	}
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditLog
}

// NewClaimOrderCommandHandler creates a handler for picker claims.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory, audit ports.AuditLog) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle claims the oldest Placed order for the commanding picker.
// Returns the claimed order so the caller-supplied completion callback can
// run with the updated state.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	pending, err := orderRepo.GetFirstInPlacedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoOrderToClaim
	}
	if err != nil {
		return nil, err
	}

	if err = pending.Claim(cmd.PickerID()); err != nil {
		return nil, err
	}

	// The conditional write is the race guard: it only lands when the row
	// is still in Placed status.
	if err = orderRepo.UpdateIfStatus(ctx, pending, order.Placed); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return nil, ErrClaimConflict
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.PickerID().String(),
		Role:      "Picker",
		Action:    "ORDER_CLAIMED",
		Reason:    fmt.Sprintf("Order %s assigned to picker %s.", pending.ID(), cmd.PickerID()),
		Timestamp: time.Now().UTC(),
	})

	return pending, nil
}
