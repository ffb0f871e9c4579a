// Package triprepo provides data transfer objects and mapping functions for
// trip persistence. A trip's constituent order identifiers are stored as a
// native Postgres text array, keeping the batch a single row.
package triprepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/trip"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TripDTO represents the database structure for persisting trip aggregates.
type TripDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	PartnerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	RouteKey  string         `gorm:"type:varchar(32);not null"`
	OrderIDs  pq.StringArray `gorm:"type:text[];not null"`
	Status    int            `gorm:"type:int;not null;index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for trip entities.
// Overrides GORM's default naming convention to use "trips".
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(aggregate *trip.Trip) TripDTO {
	orderIDs := make(pq.StringArray, 0, len(aggregate.OrderIDs()))
	for _, id := range aggregate.OrderIDs() {
		orderIDs = append(orderIDs, id.String())
	}

	return TripDTO{
		ID:        aggregate.ID().Bytes(),
		PartnerID: aggregate.PartnerID().Bytes(),
		RouteKey:  aggregate.RouteKey().String(),
		OrderIDs:  orderIDs,
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a trip domain aggregate using RestoreTrip.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	routeKey, err := kernel.NewRouteKey(dto.RouteKey)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, raw := range dto.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return trip.RestoreTrip(id, partnerID, routeKey, orderIDs, trip.Status(dto.Status), dto.CreatedAt)
}
