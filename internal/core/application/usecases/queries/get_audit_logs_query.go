package queries

import (
	"errors"
	"time"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

const maxAuditLogLimit = 500

var (
	ErrGetAuditLogsQueryIsNotConstructed = errors.New(
		"GetAuditLogsQuery must be created via NewGetAuditLogsQuery constructor",
	)
)

// GetAuditLogsQuery retrieves the most recent audit trail entries, newest
// first. The limit is capped to keep the admin screen responsive.
type GetAuditLogsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetAuditLogsQuery creates a query for the audit trail.
// The limit must be between 1 and 500.
func NewGetAuditLogsQuery(limit int) (GetAuditLogsQuery, error) {
	if limit < 1 || limit > maxAuditLogLimit {
		return GetAuditLogsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxAuditLogLimit)
	}

	return GetAuditLogsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAuditLogsQueryIsNotConstructed if validation fails.
func (q GetAuditLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditLogsQueryIsNotConstructed)
}

// Limit returns the maximum number of entries to fetch.
func (q GetAuditLogsQuery) Limit() int { return q.limit }

// GetAuditLogsQueryResponse represents one audit trail entry.
type GetAuditLogsQueryResponse struct {
	UserID    string
	Role      string
	Action    string
	Reason    string
	Timestamp time.Time
}
