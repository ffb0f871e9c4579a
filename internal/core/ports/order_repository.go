// Package ports defines repository and collaborator interfaces for the
// grocery domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate unconditionally.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists changes to an order only when its stored
	// status still equals expected. This is the compare-and-set primitive
	// backing the picker claim: concurrent actors race on the same Placed
	// order and exactly one conditional write wins. Returns
	// errs.ErrVersionIsInvalid (wrapped) when the precondition fails.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPlacedStatus retrieves the oldest order still in Placed
	// status. Used by the picker claim workflow, which consumes exactly
	// one pending order per invocation.
	GetFirstInPlacedStatus(ctx context.Context) (*order.Order, error)

	// GetAllByIDs retrieves the orders for the given identifiers, in the
	// same sequence. Returns errs.ErrObjectNotFound (wrapped) when any
	// identifier is absent.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
