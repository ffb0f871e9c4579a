package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a product from the catalog. Returns
	// errs.ErrObjectNotFound (wrapped) when the product does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
