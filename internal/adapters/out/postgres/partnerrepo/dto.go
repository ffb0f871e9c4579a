// Package partnerrepo provides data transfer objects and mapping functions for
// delivery partner persistence. This package implements the repository pattern
// for the partner domain aggregate, handling the conversion between domain
// entities and database representations.
package partnerrepo

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
type PartnerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Email   string    `gorm:"type:varchar(255)"`
	ShiftOn bool      `gorm:"not null;index"`
	IsBusy  bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Email:   aggregate.Email(),
		ShiftOn: aggregate.ShiftOn(),
		IsBusy:  aggregate.IsBusy(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate using RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(id, dto.Name, dto.Email, dto.ShiftOn, dto.IsBusy)
}
