package store

import (
	"context"

	"github.com/okulikov/go-save-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStore is the durable, atomic home of the current save document and
// its sync bookkeeping. Save assigns versions and checksums; a document is
// never visible half-written (every mutation commits in one transaction).
type DocumentStore interface {
	// Load reads the current document. found is false on first run, before
	// anything has been saved; that is not an error.
	Load(ctx context.Context) (doc models.SaveDocument, found bool, err error)

	// Save persists payload as the next revision: version = previous + 1,
	// checksum recomputed, lastModifiedAt set to now. Returns the stored
	// document.
	Save(ctx context.Context, payload []byte) (models.SaveDocument, error)

	// Clear removes the durable document and resets the sync bookkeeping.
	// The next Save starts again at version 1.
	Clear(ctx context.Context) error

	// Marks reads the sync bookkeeping recorded after the last successful
	// sync. Zero values on first run.
	Marks(ctx context.Context) (models.SyncMarks, error)

	// SetMarks overwrites the sync bookkeeping.
	SetMarks(ctx context.Context, marks models.SyncMarks) error
}

// QueueStore is the durable FIFO retry queue for sync operations attempted
// while the remote store was unreachable. Contents survive process restart.
// Enqueue and Drain are mutually serialized so concurrent mutation cannot
// lose items.
type QueueStore interface {
	// Enqueue records op for later replay. A pending item of the same kind
	// is coalesced into (its enqueue time refreshed) instead of duplicated.
	Enqueue(ctx context.Context, op models.SyncOperation) (models.SyncQueueItem, error)

	// Items returns all pending items in FIFO order.
	Items(ctx context.Context) ([]models.SyncQueueItem, error)

	// Drain replays pending items in FIFO order. apply is invoked once per
	// item; success removes the item, failure increments its retry count.
	// Items reaching the retry cap are evicted and returned as abandoned —
	// they are never replayed again.
	Drain(ctx context.Context, apply func(models.SyncQueueItem) error) (abandoned []models.SyncQueueItem, err error)

	// Clear discards all pending items.
	Clear(ctx context.Context) error
}

// BackupStore retains rotating point-in-time snapshots of the save document,
// bounded in count with oldest-first eviction. Backups are immutable once
// created.
type BackupStore interface {
	// Create snapshots doc under the given label and prunes the collection
	// to the configured cap.
	Create(ctx context.Context, label string, doc models.SaveDocument) (models.Backup, error)

	// List returns all retained backups, newest first, without payloads.
	List(ctx context.Context) ([]models.Backup, error)

	// Restore returns the snapshotted document for id. The payload checksum
	// is verified first; a corrupted backup fails with ErrBackupCorrupted
	// rather than returning bad data.
	Restore(ctx context.Context, id string) (models.SaveDocument, error)

	// Prune evicts the oldest backups beyond keep.
	Prune(ctx context.Context, keep int) error
}

// RemoteSaveRepository is the server-side store behind the reference
// remote-store HTTP API. Documents are keyed by owner (the identity carried
// by the opaque credential).
type RemoteSaveRepository interface {
	// Get reads the owner's document. found is false when none exists.
	Get(ctx context.Context, owner string) (doc models.SaveDocument, found bool, err error)

	// State reads the owner's version probe without the payload.
	State(ctx context.Context, owner string) (state models.RemoteState, found bool, err error)

	// Put stores doc as the next remote revision. When a document already
	// exists and its version differs from expectedVersion the write is
	// rejected with ErrVersionConflict (optimistic locking).
	Put(ctx context.Context, owner string, doc models.SaveDocument, expectedVersion uint64) (models.RemoteState, error)

	// Delete removes the owner's document ("clear cloud data").
	Delete(ctx context.Context, owner string) error
}
