package mysql

import (
	"errors"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"gorm.io/gorm"
)

// translate maps driver-level errors onto the domain sentinels.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrRecordNotFound
	}
	return err
}

// first loads one row by primary key into out.
func first[T any](db *gorm.DB, id string) (*T, error) {
	var out T
	if err := db.Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}
