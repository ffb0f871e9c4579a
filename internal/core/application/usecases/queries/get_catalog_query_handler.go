package queries

import (
	"context"

	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler retrieves the active product catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query for active products.
// Results are sorted by category then name, matching the storefront layout.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog := make([]GetCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			unit_label,
			price,
			available_qty,
			newly_launched
		FROM products
		WHERE active = TRUE
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCatalogQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Category,
			&resp.UnitLabel,
			&resp.Price,
			&resp.AvailableQty,
			&resp.NewlyLaunched,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		resp.OutOfStock = resp.AvailableQty <= 0
		catalog = append(catalog, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}
