package queries

import (
	"context"
	"database/sql"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrderQueryHandler retrieves a customer's in-flight order from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetActiveOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrderQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrderQueryHandler(db *gorm.DB) GetActiveOrderQueryHandler {
	return GetActiveOrderQueryHandler{db: db}
}

// Handle executes the query for the customer's most recent active order.
// Orders past Delivered are invisible here; the tracking screen goes blank
// once the cycle ends.
func (h GetActiveOrderQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrderQuery,
) (*GetActiveOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			address,
			pincode,
			route_key,
			payment_confirmed,
			notes
		FROM orders
		WHERE customer_id = ?
			AND status NOT IN (?, ?)
		ORDER BY created_at DESC
		LIMIT 1
	`, query.CustomerID().Bytes(), order.Delivered, order.Closed).Row()

	var resp GetActiveOrderQueryResponse
	var id uuid.UUID
	var status int

	err := row.Scan(
		&id,
		&status,
		&resp.Address,
		&resp.Pincode,
		&resp.RouteKey,
		&resp.PaymentConfirmed,
		&resp.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("active order", query.CustomerID().String())
	}
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()

	return &resp, nil
}
