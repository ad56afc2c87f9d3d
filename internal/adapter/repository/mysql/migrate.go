package mysql

import (
	"github.com/ScoutDevs/Rechartering/internal/domain/application"
	"github.com/ScoutDevs/Rechartering/internal/domain/guardian"
	"github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/user"
	"github.com/ScoutDevs/Rechartering/internal/domain/volunteer"
	"github.com/ScoutDevs/Rechartering/internal/domain/youth"
	"gorm.io/gorm"
)

// Models lists every table owned by the store.
func Models() []any {
	return []any{
		&application.Application{},
		&youth.Youth{},
		&organization.District{},
		&organization.Subdistrict{},
		&organization.SponsoringOrganization{},
		&organization.Unit{},
		&guardian.Guardian{},
		&volunteer.Volunteer{},
		&user.User{},
	}
}

// AutoMigrate creates the tables for local sqlite runs and tests. Production
// schemas are managed outside the service.
func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(Models()...) }
