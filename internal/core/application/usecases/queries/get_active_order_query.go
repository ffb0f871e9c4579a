// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var (
	ErrGetActiveOrderQueryIsNotConstructed = errors.New(
		"GetActiveOrderQuery must be created via NewGetActiveOrderQuery constructor",
	)
)

// GetActiveOrderQuery retrieves a customer's current in-flight order.
// Used by the customer tracking screen, which shows one order at a time.
//
// Example:
//
//	query, err := NewGetActiveOrderQuery(customerID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetActiveOrderQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", active.ID, active.Status)
type GetActiveOrderQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrderQuery creates a query for the customer's active order.
func NewGetActiveOrderQuery(customerID kernel.UUID) (GetActiveOrderQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetActiveOrderQuery{}, err
	}

	return GetActiveOrderQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrderQueryIsNotConstructed if validation fails.
func (q GetActiveOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrderQueryIsNotConstructed)
}

// CustomerID returns the customer whose order is requested.
func (q GetActiveOrderQuery) CustomerID() kernel.UUID { return q.customerID }

// GetActiveOrderQueryResponse is the customer-facing order read model.
type GetActiveOrderQueryResponse struct {
	ID               kernel.UUID
	Status           string
	Address          string
	Pincode          string
	RouteKey         string
	PaymentConfirmed bool
	Notes            string
}
