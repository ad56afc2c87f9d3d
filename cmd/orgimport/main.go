package main

import (
	"os"

	"github.com/ScoutDevs/Rechartering/internal/config"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err := newRootCmd(cfg, log).Execute(); err != nil {
		os.Exit(1)
	}
}
