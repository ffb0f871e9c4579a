package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAuditLogsQueryHandler retrieves audit trail entries from the database.
type GetAuditLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditLogsQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetAuditLogsQueryHandler(db *gorm.DB) GetAuditLogsQueryHandler {
	return GetAuditLogsQueryHandler{db: db}
}

// Handle executes the query for the newest audit entries up to the limit.
func (h GetAuditLogsQueryHandler) Handle(
	ctx context.Context,
	query GetAuditLogsQuery,
) ([]GetAuditLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetAuditLogsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			role,
			action,
			reason,
			timestamp
		FROM audit_logs
		ORDER BY timestamp DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAuditLogsQueryResponse

		err = rows.Scan(
			&entry.UserID,
			&entry.Role,
			&entry.Action,
			&entry.Reason,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
