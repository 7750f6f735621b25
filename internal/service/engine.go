// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okulikov/go-save-sync/internal/adapter"
	"github.com/okulikov/go-save-sync/internal/checksum"
	"github.com/okulikov/go-save-sync/internal/config"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/store"
	"github.com/okulikov/go-save-sync/models"
)

const backupLabelPreDownload = "pre-download"

// AbandonedFunc is notified once per drain with the queued operations that
// reached the retry cap and were evicted.
type AbandonedFunc func(items []models.SyncQueueItem)

type syncEngine struct {
	docs      store.DocumentStore
	queue     store.QueueStore
	backups   store.BackupStore
	transport adapter.Transport
	resolver  *Resolver

	// syncing is the single mutual-exclusion point: one sync round at a
	// time, and the offline->online drain reuses it as its debounce.
	syncing atomic.Bool

	mu         sync.RWMutex
	state      models.SyncState
	online     bool
	lastRemote models.RemoteState

	onAbandoned AbandonedFunc
	logger      *logger.Logger
}

// NewSyncEngine wires the engine over its collaborators. onAbandoned may be
// nil; abandoned queue items are always logged regardless. The engine starts
// idle and offline until SetOnline reports connectivity.
func NewSyncEngine(
	docs store.DocumentStore,
	queue store.QueueStore,
	backups store.BackupStore,
	transport adapter.Transport,
	cfg config.Sync,
	onAbandoned AbandonedFunc,
	log *logger.Logger,
) SyncEngine {
	return &syncEngine{
		docs:        docs,
		queue:       queue,
		backups:     backups,
		transport:   transport,
		resolver:    NewResolver(models.Strategy(cfg.ConflictResolution)),
		state:       models.StateIdle,
		onAbandoned: onAbandoned,
		logger:      log,
	}
}

// Sync implements [SyncEngine].
func (e *syncEngine) Sync(ctx context.Context) (models.SyncReport, error) {
	if !e.syncing.CompareAndSwap(false, true) {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer e.syncing.Store(false)

	return e.syncRound(ctx)
}

func (e *syncEngine) syncRound(ctx context.Context) (models.SyncReport, error) {
	e.setState(models.StateChecking)

	remote, err := e.transport.GetRemoteVersion(ctx)
	if err != nil {
		e.setState(models.StateIdle)
		return models.SyncReport{}, fmt.Errorf("probe remote version: %w", err)
	}
	e.rememberRemote(remote)

	doc, found, err := e.docs.Load(ctx)
	if err != nil {
		e.setState(models.StateIdle)
		return models.SyncReport{}, fmt.Errorf("load local document: %w", err)
	}
	marks, err := e.docs.Marks(ctx)
	if err != nil {
		e.setState(models.StateIdle)
		return models.SyncReport{}, fmt.Errorf("load sync marks: %w", err)
	}

	direction := e.resolver.Resolve(doc, found, marks, remote)
	e.logger.Debug().
		Str("direction", string(direction)).
		Uint64("local_version", doc.Version).
		Uint64("remote_version", remote.Version).
		Msg("sync direction resolved")

	switch direction {
	case models.DirectionNone:
		e.setState(models.StateIdle)
		return models.SyncReport{
			Direction:     models.DirectionNone,
			LocalVersion:  doc.Version,
			RemoteVersion: remote.Version,
		}, nil

	case models.DirectionUpload:
		return e.uploadRound(ctx, doc, marks)

	case models.DirectionDownload:
		return e.downloadRound(ctx, doc, found)

	default: // conflict
		e.setState(models.StateConflictPending)
		return models.SyncReport{
			Direction:     models.DirectionConflict,
			LocalVersion:  doc.Version,
			RemoteVersion: remote.Version,
		}, ErrConflictUnresolved
	}
}

// Upload implements [SyncEngine].
func (e *syncEngine) Upload(ctx context.Context) (models.SyncReport, error) {
	if !e.syncing.CompareAndSwap(false, true) {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer e.syncing.Store(false)

	doc, found, err := e.docs.Load(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("load local document: %w", err)
	}
	if !found {
		return models.SyncReport{}, fmt.Errorf("%w: no local document to upload", store.ErrStorageFailure)
	}
	marks, err := e.docs.Marks(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("load sync marks: %w", err)
	}

	return e.uploadRound(ctx, doc, marks)
}

func (e *syncEngine) uploadRound(ctx context.Context, doc models.SaveDocument, marks models.SyncMarks) (models.SyncReport, error) {
	e.setState(models.StateUploading)

	remote, err := e.pushLocal(ctx, doc, marks)
	if err != nil {
		e.setState(models.StateIdle)
		report := models.SyncReport{Direction: models.DirectionUpload, LocalVersion: doc.Version}
		if errors.Is(err, adapter.ErrNetwork) {
			report.Enqueued = e.enqueue(ctx, models.OperationUpload)
		}
		return report, err
	}

	e.setState(models.StateIdle)
	return models.SyncReport{
		Direction:     models.DirectionUpload,
		LocalVersion:  doc.Version,
		RemoteVersion: remote.Version,
	}, nil
}

// pushLocal uploads doc and records the new common point in the sync marks.
// It never enqueues; the caller decides how a failure is handled.
func (e *syncEngine) pushLocal(ctx context.Context, doc models.SaveDocument, marks models.SyncMarks) (models.RemoteState, error) {
	remote, err := e.transport.Upload(ctx, doc, marks.LastKnownRemoteVersion)
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("upload document: %w", err)
	}
	e.rememberRemote(remote)

	if err = e.docs.SetMarks(ctx, models.SyncMarks{
		LastKnownRemoteVersion: remote.Version,
		LastSyncedLocalVersion: doc.Version,
		LastSyncAt:             time.Now().UTC(),
	}); err != nil {
		return models.RemoteState{}, fmt.Errorf("record sync marks: %w", err)
	}

	e.logger.Info().
		Uint64("local_version", doc.Version).
		Uint64("remote_version", remote.Version).
		Msg("document uploaded")
	return remote, nil
}

// Download implements [SyncEngine].
func (e *syncEngine) Download(ctx context.Context) (models.SyncReport, error) {
	if !e.syncing.CompareAndSwap(false, true) {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer e.syncing.Store(false)

	doc, found, err := e.docs.Load(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("load local document: %w", err)
	}

	return e.downloadRound(ctx, doc, found)
}

func (e *syncEngine) downloadRound(ctx context.Context, local models.SaveDocument, localFound bool) (models.SyncReport, error) {
	e.setState(models.StateDownloading)

	saved, remoteVersion, err := e.pullRemote(ctx, local, localFound)
	if err != nil {
		e.setState(models.StateIdle)
		report := models.SyncReport{Direction: models.DirectionDownload, LocalVersion: local.Version}
		if errors.Is(err, adapter.ErrNetwork) {
			report.Enqueued = e.enqueue(ctx, models.OperationDownload)
		}
		return report, err
	}

	e.setState(models.StateIdle)
	return models.SyncReport{
		Direction:     models.DirectionDownload,
		LocalVersion:  saved.Version,
		RemoteVersion: remoteVersion,
	}, nil
}

// pullRemote downloads the remote document, verifies it, snapshots the
// current local document, then overwrites it. Verification happens before
// anything is written; a failed backup aborts the overwrite. It never
// enqueues.
func (e *syncEngine) pullRemote(ctx context.Context, local models.SaveDocument, localFound bool) (models.SaveDocument, uint64, error) {
	remoteDoc, err := e.transport.Download(ctx)
	if err != nil {
		return models.SaveDocument{}, 0, fmt.Errorf("download document: %w", err)
	}
	e.rememberRemote(models.RemoteState{Version: remoteDoc.Version, LastModifiedAt: remoteDoc.LastModifiedAt})

	if !checksum.Verify(remoteDoc.Payload, remoteDoc.Checksum) {
		return models.SaveDocument{}, 0, fmt.Errorf("%w: downloaded document rejected", ErrCorruptedDocument)
	}

	if localFound {
		if _, err = e.backups.Create(ctx, backupLabelPreDownload, local); err != nil {
			return models.SaveDocument{}, 0, fmt.Errorf("create pre-download backup: %w", err)
		}
	}

	saved, err := e.docs.Save(ctx, remoteDoc.Payload)
	if err != nil {
		return models.SaveDocument{}, 0, fmt.Errorf("save downloaded document: %w", err)
	}

	if err = e.docs.SetMarks(ctx, models.SyncMarks{
		LastKnownRemoteVersion: remoteDoc.Version,
		LastSyncedLocalVersion: saved.Version,
		LastSyncAt:             time.Now().UTC(),
	}); err != nil {
		return models.SaveDocument{}, 0, fmt.Errorf("record sync marks: %w", err)
	}

	e.logger.Info().
		Uint64("local_version", saved.Version).
		Uint64("remote_version", remoteDoc.Version).
		Msg("document downloaded")
	return saved, remoteDoc.Version, nil
}

// ResolveConflict implements [SyncEngine].
func (e *syncEngine) ResolveConflict(ctx context.Context, direction models.Direction) (models.SyncReport, error) {
	if direction != models.DirectionUpload && direction != models.DirectionDownload {
		return models.SyncReport{}, fmt.Errorf("conflict resolution requires upload or download, got %q", direction)
	}

	if !e.syncing.CompareAndSwap(false, true) {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer e.syncing.Store(false)

	doc, found, err := e.docs.Load(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("load local document: %w", err)
	}

	if direction == models.DirectionUpload {
		marks, err := e.docs.Marks(ctx)
		if err != nil {
			return models.SyncReport{}, fmt.Errorf("load sync marks: %w", err)
		}
		return e.uploadRound(ctx, doc, marks)
	}
	return e.downloadRound(ctx, doc, found)
}

// Status implements [SyncEngine].
func (e *syncEngine) Status(ctx context.Context) (models.SyncStatus, error) {
	doc, found, err := e.docs.Load(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("load local document: %w", err)
	}
	marks, err := e.docs.Marks(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("load sync marks: %w", err)
	}

	e.mu.RLock()
	online := e.online
	state := e.state
	remote := e.lastRemote
	e.mu.RUnlock()

	direction := e.resolver.Resolve(doc, found, marks, remote)

	return models.SyncStatus{
		Online:        online,
		Syncing:       e.syncing.Load(),
		State:         state,
		LocalVersion:  doc.Version,
		RemoteVersion: remote.Version,
		LastSyncAt:    marks.LastSyncAt,
		NeedsSync:     direction != models.DirectionNone,
	}, nil
}

// SetOnline implements [SyncEngine]. The drain runs at most once per
// offline->online transition: if a sync round already holds the flag the
// drain is skipped, and queued items wait for the next trigger.
func (e *syncEngine) SetOnline(ctx context.Context, online bool) {
	e.mu.Lock()
	wasOnline := e.online
	e.online = online
	e.mu.Unlock()

	if !online || wasOnline {
		return
	}

	e.logger.Info().Msg("connectivity restored, draining retry queue")
	if !e.syncing.CompareAndSwap(false, true) {
		return
	}
	defer e.syncing.Store(false)

	e.drainQueue(ctx)
}

// Online implements [SyncEngine].
func (e *syncEngine) Online() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.online
}

func (e *syncEngine) drainQueue(ctx context.Context) {
	abandoned, err := e.queue.Drain(ctx, func(item models.SyncQueueItem) error {
		return e.replay(ctx, item.Operation)
	})
	if err != nil {
		e.logger.Error().Err(err).Msg("queue drain failed")
	}
	if len(abandoned) == 0 {
		return
	}

	for _, item := range abandoned {
		e.logger.Warn().
			Uint64("item_id", item.ID).
			Str("operation", string(item.Operation)).
			Uint("retries", item.RetryCount).
			Msg("sync operation abandoned")
	}
	if e.onAbandoned != nil {
		e.onAbandoned(abandoned)
	}
}

// replay executes one queued operation. Failures are returned to the queue's
// retry accounting rather than re-enqueued.
func (e *syncEngine) replay(ctx context.Context, op models.SyncOperation) error {
	doc, found, err := e.docs.Load(ctx)
	if err != nil {
		return fmt.Errorf("load local document: %w", err)
	}

	switch op {
	case models.OperationUpload:
		if !found {
			// The document was cleared after the upload was queued; there
			// is nothing left to push.
			return nil
		}
		marks, err := e.docs.Marks(ctx)
		if err != nil {
			return fmt.Errorf("load sync marks: %w", err)
		}
		_, err = e.pushLocal(ctx, doc, marks)
		return err

	case models.OperationDownload:
		_, _, err = e.pullRemote(ctx, doc, found)
		return err

	default:
		return fmt.Errorf("unknown queued operation %q", op)
	}
}

func (e *syncEngine) enqueue(ctx context.Context, op models.SyncOperation) bool {
	if _, err := e.queue.Enqueue(ctx, op); err != nil {
		e.logger.Error().Err(err).Str("operation", string(op)).Msg("failed to enqueue sync operation")
		return false
	}
	e.logger.Info().Str("operation", string(op)).Msg("sync operation queued for retry")
	return true
}

func (e *syncEngine) setState(state models.SyncState) {
	e.mu.Lock()
	e.state = state
	e.mu.Unlock()
}

func (e *syncEngine) rememberRemote(remote models.RemoteState) {
	e.mu.Lock()
	e.lastRemote = remote
	e.mu.Unlock()
}
