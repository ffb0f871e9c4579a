package queries

import (
	"context"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/trip"

	"gorm.io/gorm"
)

// GetDashboardCountsQueryHandler aggregates order and trip counts for the
// admin dashboard.
type GetDashboardCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardCountsQueryHandler creates a handler for dashboard count queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardCountsQueryHandler(db *gorm.DB) GetDashboardCountsQueryHandler {
	return GetDashboardCountsQueryHandler{db: db}
}

// Handle executes the aggregation. Statuses with no orders are absent from
// the map rather than zero-valued.
func (h GetDashboardCountsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardCountsQuery,
) (*GetDashboardCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp := GetDashboardCountsQueryResponse{
		OrdersByStatus: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		resp.OrdersByStatus[order.Status(status).String()] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM trips
		WHERE status != ?
	`, trip.Closed).Row()

	if err = row.Scan(&resp.ActiveTrips); err != nil {
		return nil, err
	}

	return &resp, nil
}
