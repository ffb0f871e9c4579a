// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The requested and fulfilled item lists are stored as JSONB documents; they
// travel with the order and are never queried independently.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	PickerID         *uuid.UUID `gorm:"type:uuid;index"`
	Address          string     `gorm:"type:varchar(512);not null"`
	Pincode          string     `gorm:"type:varchar(16)"`
	RouteKey         string     `gorm:"type:varchar(32);not null;index"`
	RequestedItems   []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	FulfilledItems   []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	Status           int        `gorm:"type:int;not null;index"`
	PaymentMethod    string     `gorm:"type:varchar(64);not null"`
	PaymentConfirmed bool       `gorm:"not null"`
	Notes            string     `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one line of a stored item list.
type ItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional picker assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var pickerID *uuid.UUID
	if id := aggregate.Picker(); id != nil {
		raw := id.Bytes()
		pickerID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		PickerID:         pickerID,
		Address:          aggregate.Address(),
		Pincode:          aggregate.Pincode(),
		RouteKey:         aggregate.RouteKey().String(),
		RequestedItems:   itemsFromDomain(aggregate.Items()),
		FulfilledItems:   itemsFromDomain(aggregate.FulfilledItems()),
		Status:           int(aggregate.Status()),
		PaymentMethod:    aggregate.PaymentMethod(),
		PaymentConfirmed: aggregate.PaymentConfirmed(),
		Notes:            aggregate.Notes(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, picker assignment
// and fulfillment state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var pickerID *kernel.UUID
	if dto.PickerID != nil {
		pID, pickerErr := kernel.UUIDFromBytes((*dto.PickerID)[:])
		if pickerErr != nil {
			return nil, pickerErr
		}

		pickerID = &pID
	}

	routeKey, err := kernel.NewRouteKey(dto.RouteKey)
	if err != nil {
		return nil, err
	}

	requested, err := itemsToDomain(dto.RequestedItems)
	if err != nil {
		return nil, err
	}

	fulfilled, err := itemsToDomain(dto.FulfilledItems)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Address,
		dto.Pincode,
		routeKey,
		requested,
		fulfilled,
		order.Status(dto.Status),
		pickerID,
		dto.PaymentMethod,
		dto.PaymentConfirmed,
		dto.Notes,
	)
}

func itemsFromDomain(items []order.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}
	return dtos
}

func itemsToDomain(dtos []ItemDTO) ([]order.Item, error) {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := order.NewItem(dto.ID, dto.Name, dto.Price, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
