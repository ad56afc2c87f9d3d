package mysql

import (
	"context"

	"github.com/ScoutDevs/Rechartering/internal/domain/youth"
	"gorm.io/gorm"
)

type YouthRepository struct{ db *gorm.DB }

func NewYouthRepository(db *gorm.DB) *YouthRepository { return &YouthRepository{db: db} }

func (r *YouthRepository) GetByID(ctx context.Context, id string) (*youth.Youth, error) {
	return first[youth.Youth](r.db.WithContext(ctx), id)
}

func (r *YouthRepository) Save(ctx context.Context, y *youth.Youth) error {
	return r.db.WithContext(ctx).Save(y).Error
}

func (r *YouthRepository) FindByDuplicateHash(ctx context.Context, hash string) ([]youth.Youth, error) {
	var out []youth.Youth
	err := r.db.WithContext(ctx).Where("duplicate_hash = ?", hash).Order("id").Find(&out).Error
	return out, err
}

func (r *YouthRepository) Search(ctx context.Context, f youth.Filter) ([]youth.Youth, error) {
	q := r.db.WithContext(ctx)
	if f.ScoutnetID != 0 {
		q = q.Where("scoutnet_id = ?", f.ScoutnetID)
	}
	if f.LastName != "" {
		q = q.Where("LOWER(last_name) = LOWER(?)", f.LastName)
	}
	if f.UnitID != "" {
		// units is a JSON array of quoted ids
		q = q.Where("units LIKE ?", `%"`+f.UnitID+`"%`)
	}
	var out []youth.Youth
	err := q.Order("last_name, first_name, id").Find(&out).Error
	return out, err
}
