// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Category      string    `gorm:"type:varchar(255);not null;index"`
	UnitLabel     string    `gorm:"type:varchar(64);not null"`
	Price         int64     `gorm:"not null"`
	AvailableQty  int       `gorm:"not null"`
	NewlyLaunched bool      `gorm:"not null"`
	Active        bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Category:      aggregate.Category(),
		UnitLabel:     aggregate.UnitLabel(),
		Price:         aggregate.Price(),
		AvailableQty:  aggregate.AvailableQty(),
		NewlyLaunched: aggregate.NewlyLaunched(),
		Active:        aggregate.Active(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Category,
		dto.UnitLabel,
		dto.Price,
		dto.AvailableQty,
		dto.NewlyLaunched,
		dto.Active,
	)
}
