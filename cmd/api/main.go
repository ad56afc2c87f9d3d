package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadp "github.com/ScoutDevs/Rechartering/internal/adapter/http"
	"github.com/ScoutDevs/Rechartering/internal/adapter/middleware"
	unitcache "github.com/ScoutDevs/Rechartering/internal/adapter/repository/cache"
	"github.com/ScoutDevs/Rechartering/internal/adapter/repository/mysql"
	"github.com/ScoutDevs/Rechartering/internal/config"
	domainOrg "github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/cache"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/db"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/logger"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/metrics"
	"github.com/ScoutDevs/Rechartering/internal/usecase/application"
	"github.com/ScoutDevs/Rechartering/internal/usecase/guardian"
	"github.com/ScoutDevs/Rechartering/internal/usecase/organization"
	"github.com/ScoutDevs/Rechartering/internal/usecase/volunteer"
	"github.com/ScoutDevs/Rechartering/internal/usecase/youth"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	slog.SetDefault(log)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg)
	if err != nil {
		log.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	if err := mysql.AutoMigrate(gdb); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	rdb, err := cache.Open(ctx, cfg)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	m := metrics.New(prometheus.DefaultRegisterer)
	tx := mysql.NewGormUoW(gdb)

	var (
		units   domainOrg.UnitReader
		orgOpts = []organization.Option{organization.WithLogger(log), organization.WithMetrics(m)}
	)
	if ttl := cfg.UnitCacheTTL(); ttl > 0 {
		c := unitcache.NewOrganizationRepository(mysql.NewOrganizationRepository(gdb), rdb, ttl, unitcache.WithLogger(log))
		units = c
		orgOpts = append(orgOpts, organization.WithUnitCache(c))
	}

	h := httpadp.Handlers{
		Health: httpadp.NewHandler(),
		Applications: httpadp.NewApplicationHandler(application.NewUsecase(tx, units,
			application.WithLogger(log), application.WithMetrics(m))),
		Youth:         httpadp.NewYouthHandler(youth.NewUsecase(tx, youth.WithLogger(log))),
		Organizations: httpadp.NewOrganizationHandler(organization.NewUsecase(tx, orgOpts...)),
		Guardians:     httpadp.NewGuardianHandler(guardian.NewUsecase(tx, guardian.WithLogger(log))),
		Volunteers:    httpadp.NewVolunteerHandler(volunteer.NewUsecase(tx, volunteer.WithLogger(log))),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.InfoContext(c.Request().Context(), "request",
				"method", v.Method, "path", v.URIPath, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))

	// routes
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	httpadp.Register(e, h,
		middleware.CurrentUser(mysql.NewUserRepository(gdb)),
		middleware.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log),
	)

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", "addr", addr, "db_driver", cfg.DBDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
