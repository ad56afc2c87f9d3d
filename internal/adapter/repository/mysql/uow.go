package mysql

import (
	"context"

	"github.com/ScoutDevs/Rechartering/internal/domain/application"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// Repos binds every repository to db.
func Repos(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Applications:  NewApplicationRepository(db),
		Youth:         NewYouthRepository(db),
		Organizations: NewOrganizationRepository(db),
		Guardians:     NewGuardianRepository(db),
		Volunteers:    NewVolunteerRepository(db),
		Users:         NewUserRepository(db),
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repos(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := Repos(tx)
		// lock the application row up-front so concurrent transitions serialize
		a, err := r.Applications.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
