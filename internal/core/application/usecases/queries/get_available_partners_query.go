package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var (
	ErrGetAvailablePartnersQueryIsNotConstructed = errors.New(
		"GetAvailablePartnersQuery must be created via NewGetAvailablePartnersQuery constructor",
	)
)

// GetAvailablePartnersQuery retrieves delivery partners who are on shift and
// not currently assigned to a trip.
type GetAvailablePartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailablePartnersQuery creates a query to retrieve assignable partners.
func NewGetAvailablePartnersQuery() GetAvailablePartnersQuery {
	return GetAvailablePartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailablePartnersQueryIsNotConstructed if validation fails.
func (q GetAvailablePartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePartnersQueryIsNotConstructed)
}

// GetAvailablePartnersQueryResponse represents one assignable delivery partner.
type GetAvailablePartnersQueryResponse struct {
	ID   kernel.UUID
	Name string
}
