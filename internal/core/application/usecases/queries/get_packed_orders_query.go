package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var (
	ErrGetPackedOrdersQueryIsNotConstructed = errors.New(
		"GetPackedOrdersQuery must be created via NewGetPackedOrdersQuery constructor",
	)
)

// GetPackedOrdersQuery retrieves all orders waiting to be batched into a
// trip. The admin batching screen groups the result by route key.
//
// Example:
//
//	query := NewGetPackedOrdersQuery()
//	handler := NewGetPackedOrdersQueryHandler(db)
//
//	packed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get packed orders: %w", err)
//	}
//
//	for _, o := range packed {
//	    fmt.Printf("Order %s on route %s\n", o.ID, o.RouteKey)
//	}
type GetPackedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPackedOrdersQuery creates a query to retrieve batchable orders.
func NewGetPackedOrdersQuery() GetPackedOrdersQuery {
	return GetPackedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackedOrdersQueryIsNotConstructed if validation fails.
func (q GetPackedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPackedOrdersQueryIsNotConstructed)
}

// GetPackedOrdersQueryResponse represents one batchable order.
type GetPackedOrdersQueryResponse struct {
	ID       kernel.UUID
	RouteKey string
	Address  string
	Pincode  string
}
