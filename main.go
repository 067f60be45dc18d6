package main

import (
	"github.com/wfunc/draftserver/config"
	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/logger"
	"github.com/wfunc/draftserver/monitor"
	"github.com/wfunc/draftserver/persistence"
	"github.com/wfunc/draftserver/server"
	"github.com/wfunc/draftserver/services"
)

func main() {
	// Initialize logger
	logger.Init()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Resolve the preset new drafts will use
	preset, ok := draft.PresetByName(cfg.Draft.Preset)
	if !ok {
		logger.Log.Fatalf("Unknown preset %q", cfg.Draft.Preset)
	}

	// Archive storage is optional; live drafts never touch the database
	var archive *services.ArchiveService
	if cfg.Archive.Enabled {
		db, err := persistence.NewGormPostgreSQL(
			cfg.Archive.Postgres.Host,
			cfg.Archive.Postgres.Port,
			cfg.Archive.Postgres.User,
			cfg.Archive.Postgres.Password,
			cfg.Archive.Postgres.DBName,
		)
		if err != nil {
			logger.Log.Fatalf("Failed to connect to database: %v", err)
		}
		logger.Log.Info("Archive database connection successful.")
		archive = services.NewArchiveService(db)
	}

	// Metrics endpoint
	mon := monitor.NewMonitor("draftserver")
	mon.StartServer(cfg.Server.MonitorAddress)

	// Initialize Draft Server
	draftServer := server.NewDraftServer(
		cfg.Server.HTTPAddress,
		cfg.Server.RPCAddress,
		preset,
		cfg.Draft.RevealDelay,
		archive,
		mon,
	)

	// Start Server
	logger.Log.Infof("Starting draft server on %s", cfg.Server.HTTPAddress)
	if err := draftServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
