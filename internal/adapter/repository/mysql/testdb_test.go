package mysql

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/application"
	"github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/youth"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates a named in-memory sqlite DB shared by every pooled
// connection, so a repo bound to db sees what a tx committed.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func makeApplication(id string) *application.Application {
	return &application.Application{
		ID:          id,
		Status:      application.StatusCreated,
		UnitID:      "unt-1",
		FirstName:   "Matthew",
		LastName:    "Reece",
		DateOfBirth: day(2002, 1, 15),
	}
}

func makeYouth(id, first, last string, units ...string) *youth.Youth {
	return &youth.Youth{ID: id, FirstName: first, LastName: last, DateOfBirth: day(2002, 1, 15), Units: units}
}

func makeUnit(id string, lds bool) *organization.Unit {
	return &organization.Unit{ID: id, SponsoringOrganizationID: "spo-1", Type: organization.UnitTypeTroop, Number: 1455, LDSUnit: lds}
}
