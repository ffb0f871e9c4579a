package queries

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var (
	ErrGetDashboardCountsQueryIsNotConstructed = errors.New(
		"GetDashboardCountsQuery must be created via NewGetDashboardCountsQuery constructor",
	)
)

// GetDashboardCountsQuery retrieves the per-status order counts shown on the
// admin dashboard, plus the number of trips still in flight.
type GetDashboardCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardCountsQuery creates a query for dashboard counts.
// This is a parameterless query that aggregates over the whole order table.
func NewGetDashboardCountsQuery() GetDashboardCountsQuery {
	return GetDashboardCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardCountsQueryIsNotConstructed if validation fails.
func (q GetDashboardCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardCountsQueryIsNotConstructed)
}

// GetDashboardCountsQueryResponse holds order counts keyed by status name
// plus the count of trips that have not reached Closed.
type GetDashboardCountsQueryResponse struct {
	OrdersByStatus map[string]int
	ActiveTrips    int
}
