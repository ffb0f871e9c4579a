package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var (
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetCatalogQuery retrieves the customer-facing catalog: every active
// product with its price, stock and newly-launched badge. Out-of-stock
// products stay listed so the storefront can grey them out.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query to retrieve the product catalog.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse represents one catalog product.
type GetCatalogQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Category      string
	UnitLabel     string
	Price         int64
	AvailableQty  int
	NewlyLaunched bool
	OutOfStock    bool
}
