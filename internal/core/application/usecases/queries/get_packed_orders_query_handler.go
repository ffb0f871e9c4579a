package queries

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackedOrdersQueryHandler retrieves batchable orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetPackedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPackedOrdersQueryHandler creates a handler for packed order queries.
// Requires a GORM database connection for query execution.
func NewGetPackedOrdersQueryHandler(db *gorm.DB) GetPackedOrdersQueryHandler {
	return GetPackedOrdersQueryHandler{db: db}
}

// Handle executes the query for orders in Packed status.
// Results are sorted by route key then order ID so same-route orders sit
// next to each other on the batching screen.
func (h GetPackedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPackedOrdersQuery,
) ([]GetPackedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packed := make([]GetPackedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			route_key,
			address,
			pincode
		FROM orders
		WHERE status = ?
		ORDER BY route_key, id
	`, order.Packed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPackedOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.RouteKey,
			&resp.Address,
			&resp.Pincode,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		packed = append(packed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packed, nil
}
