// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okulikov/go-save-sync/internal/adapter"
	"github.com/okulikov/go-save-sync/internal/config"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/service"
	"github.com/okulikov/go-save-sync/internal/store"
	"github.com/okulikov/go-save-sync/internal/workers"
	"github.com/okulikov/go-save-sync/migrations"
)

// App owns the lifecycle of the sync client.
type App struct {
	cfg *config.StructuredConfig

	db        *store.DB
	engine    service.SyncEngine
	scheduler service.AutoSyncScheduler
	workers   *workers.Workers

	logger *logger.Logger
}

// NewApp opens the local database, applies migrations, and wires the stores,
// the transport, the sync engine and the background workers.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	if err = migrations.MigrateClient(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	docs := store.NewDocumentStore(db, log)
	queue := store.NewQueueStore(db, cfg.Sync.MaxRetries, log)
	backups := store.NewBackupStore(db, cfg.Sync.MaxBackups, log)

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create transport: %w", err)
	}

	engine := service.NewSyncEngine(docs, queue, backups, transport, cfg.Sync, nil, log)
	scheduler := service.NewAutoSyncScheduler(engine, log)

	app := &App{
		cfg:       cfg,
		db:        db,
		engine:    engine,
		scheduler: scheduler,
		logger:    log,
	}
	app.workers = workers.NewWorkers(
		newConnectivityMonitor(engine, transport, 0, log),
		&schedulerWorker{scheduler: scheduler, interval: cfg.Sync.AutoSyncInterval},
	)

	return app, nil
}

// Engine exposes the sync engine for on-demand operations (manual sync,
// conflict resolution, status queries).
func (a *App) Engine() service.SyncEngine {
	return a.engine
}

// Run starts the background workers, attempts one initial sync, and blocks
// until ctx is cancelled. Shutdown stops the scheduler (letting an in-flight
// round finish) and closes the database.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run(ctx)

	if _, err := a.engine.Sync(ctx); err != nil {
		if errors.Is(err, service.ErrConflictUnresolved) {
			a.logger.Warn().Msg("initial sync found a conflict awaiting manual resolution")
		} else {
			a.logger.Warn().Err(err).Msg("initial sync failed")
		}
	}

	<-ctx.Done()

	a.scheduler.Stop()
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close local database: %w", err)
	}

	a.logger.Info().Msg("client shut down gracefully")
	return nil
}

// schedulerWorker adapts the auto-sync scheduler to the workers aggregate.
type schedulerWorker struct {
	scheduler service.AutoSyncScheduler
	interval  time.Duration
}

func (w *schedulerWorker) Run(ctx context.Context) {
	w.scheduler.Start(ctx, w.interval)
}
