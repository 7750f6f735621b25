package store

import "errors"

// Sentinel errors returned by store implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageFailure wraps every durable-medium read/write failure
	// (disk, quota, driver). It indicates a local environment problem and
	// is surfaced immediately, never silently retried by the sync engine.
	ErrStorageFailure = errors.New("storage failure")

	// ErrBackupNotFound is returned by Restore when no backup with the
	// requested id exists.
	ErrBackupNotFound = errors.New("backup not found")

	// ErrBackupCorrupted is returned by Restore when the snapshotted
	// payload no longer matches its recorded checksum. The backup is left
	// in place for inspection; its data is never returned.
	ErrBackupCorrupted = errors.New("backup payload corrupted")

	// ErrVersionConflict is returned by the remote save repository when an
	// optimistic-locking check fails: the uploader's expected version does
	// not match the stored one, meaning another device uploaded in between.
	ErrVersionConflict = errors.New("save version conflict")
)
