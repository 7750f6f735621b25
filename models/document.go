// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package models

import "time"

// SaveDocument is the single versioned blob of application state being
// synchronized between the local device and the remote store. The sync engine
// treats Payload as an uninterpreted byte slice; gameplay code owns its
// internal format.
//
// Invariant: Checksum is always the digest of Payload. A document whose
// checksum does not match its payload is corrupted and must never be accepted
// into the local store or produced for upload.
type SaveDocument struct {
	// Version is a monotonically increasing revision number. It is assigned
	// by the local store on save and by the remote store on upload.
	Version uint64 `json:"version"`

	// LastModifiedAt records when the payload was last written.
	LastModifiedAt time.Time `json:"last_modified_at"`

	// Payload is the opaque serialized application state.
	Payload []byte `json:"payload"`

	// Checksum is the hex-encoded integrity digest of Payload.
	Checksum string `json:"checksum"`
}

// RemoteState is the lightweight version probe returned by the remote store.
// A zero Version means no document exists remotely yet.
type RemoteState struct {
	Version        uint64    `json:"version"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

// SyncMarks is the durable sync bookkeeping kept next to the local document.
// It records what the engine knew about both sides after the last successful
// sync and is the reference point for conflict resolution.
type SyncMarks struct {
	// LastKnownRemoteVersion is the remote version observed at the end of the
	// last successful upload or download.
	LastKnownRemoteVersion uint64 `json:"last_known_remote_version"`

	// LastSyncedLocalVersion is the local document version that was in sync
	// with the remote at that moment.
	LastSyncedLocalVersion uint64 `json:"last_synced_local_version"`

	// LastSyncAt is when the last successful sync completed.
	LastSyncAt time.Time `json:"last_sync_at"`
}
