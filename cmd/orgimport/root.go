package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ScoutDevs/Rechartering/internal/adapter/repository/mysql"
	"github.com/ScoutDevs/Rechartering/internal/config"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	"github.com/ScoutDevs/Rechartering/internal/domain/user"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/db"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/metrics"
	"github.com/ScoutDevs/Rechartering/internal/usecase/organization"
)

// deps is what a run needs from the outside world. Tests swap in sqlite.
type deps struct {
	tx    uow.UnitOfWork
	users user.Repository
}

type openFunc func(cfg *config.Config) (deps, error)

func openDeps(cfg *config.Config) (deps, error) {
	gdb, err := db.OpenGorm(cfg)
	if err != nil {
		return deps{}, err
	}
	if err := mysql.AutoMigrate(gdb); err != nil {
		return deps{}, err
	}
	return deps{tx: mysql.NewGormUoW(gdb), users: mysql.NewUserRepository(gdb)}, nil
}

func newRootCmd(cfg *config.Config, log *slog.Logger) *cobra.Command {
	return newImportCmd(cfg, log, openDeps)
}

func newImportCmd(cfg *config.Config, log *slog.Logger, open openFunc) *cobra.Command {
	var (
		userID string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "orgimport <file.tsv>",
		Short: "Import the council district/subdistrict/sponsoring organization export",
		Long: `Reads a tab-separated council export and upserts its districts, subdistricts
and sponsoring organizations in one transaction. Rows missing a required column
are skipped; a file missing a required header is rejected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if dryRun {
				return preview(cmd.OutOrStdout(), f)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if userID == "" {
				return fmt.Errorf("--user is required unless --dry-run is set")
			}
			d, err := open(cfg)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			u, err := d.users.GetByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("resolve user %q: %w", userID, err)
			}

			uc := organization.NewUsecase(d.tx,
				organization.WithLogger(log),
				organization.WithMetrics(metrics.New(prometheus.NewRegistry())))

			sum, err := uc.Import(ctx, u.Actor(), f)
			if err != nil {
				log.Error("import failed", "file", args[0], "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records: %d districts, %d subdistricts, %d sponsoring organizations\n",
				sum.Records, sum.Districts, sum.Subdistricts, sum.SponsoringOrganizations)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "id of the acting user (needs Council.Admin or Council.Employee)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and print the records without writing")
	return cmd
}
