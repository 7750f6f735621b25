package service

import "errors"

var (
	// ErrSyncInProgress is returned when a sync round is rejected because
	// another one is already running. Informational, not fatal; callers
	// should try again later.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrConflictUnresolved is returned in manual conflict mode when both
	// sides advanced and the engine is waiting for the caller to pick a
	// direction.
	ErrConflictUnresolved = errors.New("conflict awaiting manual resolution")

	// ErrCorruptedDocument is returned when a downloaded document fails
	// checksum verification. The local document is left untouched.
	ErrCorruptedDocument = errors.New("document checksum mismatch")
)
