package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	DBDriver   string
	MySQLHost  string
	MySQLPort  string
	MySQLDB    string
	MySQLUser  string
	MySQLPass  string
	SQLitePath string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs     int
	UnitCacheTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// getint keeps the default when the variable is unset or not a number.
func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		AppEnv:   getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DBDriver:   getenv("DB_DRIVER", DriverMySQL),
		MySQLHost:  getenv("MYSQL_HOST", "mysql"),
		MySQLPort:  getenv("MYSQL_PORT", "3306"),
		MySQLDB:    getenv("MYSQL_DB", "rechartering"),
		MySQLUser:  getenv("MYSQL_USER", "rechartering"),
		MySQLPass:  getenv("MYSQL_PASS", "rechartering"),
		SQLitePath: getenv("SQLITE_PATH", "rechartering.db"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getint("REDIS_DB", 0),

		IdempTTLSecs:     getint("IDEMPOTENCY_TTL_SECONDS", 300),
		UnitCacheTTLSecs: getint("UNIT_CACHE_TTL_SECONDS", 600),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: want %s or %s", c.DBDriver, DriverMySQL, DriverSQLite)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive, got %d", c.IdempTTLSecs)
	}
	if c.UnitCacheTTLSecs < 0 {
		return fmt.Errorf("UNIT_CACHE_TTL_SECONDS must not be negative, got %d", c.UnitCacheTTLSecs)
	}
	return nil
}

func (c *Config) Production() bool { return c.AppEnv == "production" }

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

// UnitCacheTTL of zero disables the unit cache.
func (c *Config) UnitCacheTTL() time.Duration { return time.Duration(c.UnitCacheTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATE/DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
