package main

import (
	"context"
	"fmt"

	"github.com/okulikov/go-save-sync/internal/config"
	handler "github.com/okulikov/go-save-sync/internal/handler/http"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/server"
	"github.com/okulikov/go-save-sync/internal/store"
	"github.com/okulikov/go-save-sync/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("save-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() { _ = db.Close() }()

	if err = migrations.MigrateServer(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	saves := store.NewRemoteSaveRepository(db, log)
	handlers := handler.NewHandler(saves, cfg.App, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
