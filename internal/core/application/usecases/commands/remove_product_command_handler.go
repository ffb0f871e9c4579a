package commands

import (
	"context"
	"fmt"
	"time"

	"grocery/internal/core/ports"
)

// RemoveProductCommandHandler deletes a catalog item.
type RemoveProductCommandHandler struct {
	uowFactory ProductUoWFactory
	audit      ports.AuditLog
}

// NewRemoveProductCommandHandler creates a handler for catalog removals.
func NewRemoveProductCommandHandler(uowFactory ProductUoWFactory, audit ports.AuditLog) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle removes the product from the catalog.
func (h RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
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

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.ActorID().String(),
		Role:      "Admin",
		Action:    "PRODUCT_REMOVED",
		Reason:    fmt.Sprintf("Product %s removed from the catalog.", cmd.ProductID()),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
