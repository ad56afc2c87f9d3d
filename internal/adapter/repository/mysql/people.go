package mysql

import (
	"context"

	"github.com/ScoutDevs/Rechartering/internal/domain/guardian"
	"github.com/ScoutDevs/Rechartering/internal/domain/user"
	"github.com/ScoutDevs/Rechartering/internal/domain/volunteer"
	"gorm.io/gorm"
)

type GuardianRepository struct{ db *gorm.DB }

func NewGuardianRepository(db *gorm.DB) *GuardianRepository { return &GuardianRepository{db: db} }

func (r *GuardianRepository) GetByID(ctx context.Context, id string) (*guardian.Guardian, error) {
	return first[guardian.Guardian](r.db.WithContext(ctx), id)
}

func (r *GuardianRepository) Save(ctx context.Context, g *guardian.Guardian) error {
	return r.db.WithContext(ctx).Save(g).Error
}

type VolunteerRepository struct{ db *gorm.DB }

func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository { return &VolunteerRepository{db: db} }

func (r *VolunteerRepository) GetByID(ctx context.Context, id string) (*volunteer.Volunteer, error) {
	return first[volunteer.Volunteer](r.db.WithContext(ctx), id)
}

func (r *VolunteerRepository) Save(ctx context.Context, v *volunteer.Volunteer) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VolunteerRepository) FindByDuplicateHash(ctx context.Context, hash string) ([]volunteer.Volunteer, error) {
	var out []volunteer.Volunteer
	err := r.db.WithContext(ctx).Where("duplicate_hash = ?", hash).Order("id").Find(&out).Error
	return out, err
}

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return first[user.User](r.db.WithContext(ctx), id)
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
