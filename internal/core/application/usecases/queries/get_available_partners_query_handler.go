package queries

import (
	"context"

	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailablePartnersQueryHandler retrieves assignable delivery partners
// from the database.
type GetAvailablePartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePartnersQueryHandler creates a handler for partner availability queries.
// Requires a GORM database connection for query execution.
func NewGetAvailablePartnersQueryHandler(db *gorm.DB) GetAvailablePartnersQueryHandler {
	return GetAvailablePartnersQueryHandler{db: db}
}

// Handle executes the query for on-shift, free partners sorted by name.
func (h GetAvailablePartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePartnersQuery,
) ([]GetAvailablePartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetAvailablePartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM partners
		WHERE shift_on = TRUE
			AND is_busy = FALSE
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailablePartnersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name); err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = partnerID
		partners = append(partners, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
