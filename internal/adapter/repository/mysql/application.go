package mysql

import (
	"context"

	"github.com/ScoutDevs/Rechartering/internal/domain/application"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *application.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*application.Application, error) {
	return first[application.Application](r.db.WithContext(ctx), id)
}

// GetByIDForUpdate takes a row lock; SQLite drops the clause.
func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id string) (*application.Application, error) {
	return first[application.Application](r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, s application.Status) ([]application.Application, error) {
	var out []application.Application
	err := r.db.WithContext(ctx).
		Where("status = ?", s).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
