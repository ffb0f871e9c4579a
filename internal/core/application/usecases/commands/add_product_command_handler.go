package commands

import (
	"context"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/product"
	"grocery/internal/core/ports"
)

// AddProductCommandHandler handles catalog additions from the admin item form.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
	audit      ports.AuditLog
}

// NewAddProductCommandHandler creates a handler for catalog additions.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory, audit ports.AuditLog) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle creates the product and persists it.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Category(),
		cmd.UnitLabel(),
		cmd.Price(),
		cmd.AvailableQty(),
		cmd.NewlyLaunched(),
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

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Append(ctx, ports.AuditRecord{
		UserID:    cmd.ActorID().String(),
		Role:      "Admin",
		Action:    "PRODUCT_ADDED",
		Reason:    fmt.Sprintf("Product %s (%s) added to the catalog.", newProduct.Name(), newProduct.ID()),
		Timestamp: time.Now().UTC(),
	})

	return nil
}
