// Package configrepo stores operational configuration values, currently only
// the store-return code a delivery partner must present to close a trip.
package configrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const returnCodeKey = "store_return_code"

// ConfigDTO is one key/value row of operational configuration.
type ConfigDTO struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

// TableName specifies the database table name for configuration entries.
func (ConfigDTO) TableName() string {
	return "configs"
}

// GormReturnCodeStore implements ports.ReturnCodeStore on a key/value table.
// The first read seeds the configured default, so operators can rotate the
// code with a plain UPDATE and a fresh deployment still has a working value.
type GormReturnCodeStore struct {
	db          *gorm.DB
	defaultCode string
}

// NewGormReturnCodeStore creates a return code store seeded with defaultCode.
func NewGormReturnCodeStore(db *gorm.DB, defaultCode string) *GormReturnCodeStore {
	return &GormReturnCodeStore{
		db:          db,
		defaultCode: defaultCode,
	}
}

// Get returns the current store-return code, seeding the default when the
// row is absent.
func (s *GormReturnCodeStore) Get(ctx context.Context) (string, error) {
	var dto ConfigDTO
	err := s.db.WithContext(ctx).First(&dto, "key = ?", returnCodeKey).Error
	if err == nil {
		return dto.Value, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	seed := ConfigDTO{Key: returnCodeKey, Value: s.defaultCode}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error
	if err != nil {
		return "", err
	}

	// Re-read in case a concurrent seed won the insert.
	if err = s.db.WithContext(ctx).First(&dto, "key = ?", returnCodeKey).Error; err != nil {
		return "", err
	}

	return dto.Value, nil
}
