package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver named by DB_DRIVER.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return mysql.Open(cfg.MySQLDSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// OpenGorm connects with SQL logging at Info in development and Warn in production.
func OpenGorm(cfg *config.Config) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	level := logger.Info
	if cfg.Production() {
		level = logger.Warn
	}
	return OpenGormWithDialector(dial, level)
}

// OpenGormWithDialector opens, sizes the pool and pings. Tests hand it a
// sqlmock-backed dialector.
func OpenGormWithDialector(dial gorm.Dialector, level ...logger.LogLevel) (*gorm.DB, error) {
	lvl := logger.Warn
	if len(level) > 0 {
		lvl = level[0]
	}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(lvl)})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	slog.Info("gorm: connected", "dialect", dial.Name())
	return db, nil
}
