package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/ports"
)

// UpdateProductCommandHandler persists a full catalog item edit.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	audit      ports.AuditLog
}

// NewUpdateProductCommandHandler creates a handler for catalog edits.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory, audit ports.AuditLog) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle loads the product, applies the edit and persists it.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		p.UpdateDetails(cmd.Name(), cmd.Category(), cmd.UnitLabel(), cmd.Price()),
		p.SetStock(cmd.AvailableQty()),
	); err != nil {
		return err
	}
	p.SetNewlyLaunched(cmd.NewlyLaunched())
	p.SetActive(cmd.Active())

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.ActorID().String(),
		Role:      "Admin",
		Action:    "PRODUCT_UPDATED",
		Reason:    fmt.Sprintf("Product %s (%s) updated.", p.Name(), p.ID()),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
