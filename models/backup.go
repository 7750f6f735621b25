package models

import "time"

// Backup is an immutable point-in-time snapshot of the local save document.
// The engine creates one immediately before any operation that overwrites
// local state (pre-download, pre-import); it is the only rollback path after
// a bad download.
type Backup struct {
	// ID is a generated identifier, unique within the backup store.
	ID string `json:"id"`

	// Label describes why the snapshot was taken, e.g. "pre-download".
	Label string `json:"label"`

	// CreatedAt is when the snapshot was taken.
	CreatedAt time.Time `json:"created_at"`

	// Version is the document version the snapshot was taken from.
	Version uint64 `json:"version"`

	// Payload is the snapshotted document payload. Restore verifies its
	// checksum before returning it.
	Payload []byte `json:"payload,omitempty"`

	// Checksum is the integrity digest of the uncompressed payload.
	Checksum string `json:"checksum"`
}
