// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"time"

	"github.com/okulikov/go-save-sync/models"
)

// SyncEngine orchestrates the local store, the retry queue, the backup
// collection and the transport into one synchronization state machine. At
// most one sync round runs at a time; concurrent calls are rejected with
// ErrSyncInProgress.
type SyncEngine interface {
	// Sync runs one full round: probe the remote version, resolve a
	// direction, execute it. A remote document that cannot be reached
	// surfaces as a network error without enqueuing anything.
	Sync(ctx context.Context) (models.SyncReport, error)

	// Upload pushes the current local document to the remote store. A
	// network failure enqueues an Upload for later replay and is reported
	// as recoverable.
	Upload(ctx context.Context) (models.SyncReport, error)

	// Download pulls the remote document, verifies its checksum, snapshots
	// the current local document, then overwrites it. A checksum mismatch
	// leaves the local document untouched.
	Download(ctx context.Context) (models.SyncReport, error)

	// ResolveConflict supplies the external decision for a manual-mode
	// conflict: direction must be Upload or Download.
	ResolveConflict(ctx context.Context, direction models.Direction) (models.SyncReport, error)

	// Status reports the current engine and document state on demand.
	Status(ctx context.Context) (models.SyncStatus, error)

	// SetOnline feeds the host's connectivity signal into the engine. An
	// offline to online transition drains the retry queue once.
	SetOnline(ctx context.Context, online bool)

	// Online reports the last connectivity signal received.
	Online() bool
}

// AutoSyncScheduler periodically triggers SyncEngine.Sync in the background.
type AutoSyncScheduler interface {
	// Start launches the periodic job, replacing any previous one. The job
	// stops when ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the next tick and waits for an in-flight round to finish.
	Stop()
}
