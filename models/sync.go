// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package models

import "time"

// Direction is the outcome of conflict resolution: which way data should
// flow for the current sync round.
type Direction string

const (
	// DirectionNone means both sides are already in sync; nothing to do.
	DirectionNone Direction = "none"

	// DirectionUpload means only the local document advanced; push it.
	DirectionUpload Direction = "upload"

	// DirectionDownload means only the remote document advanced; pull it.
	DirectionDownload Direction = "download"

	// DirectionConflict means both sides advanced and the configured
	// strategy is manual: the caller must choose a direction.
	DirectionConflict Direction = "conflict"
)

// Strategy selects how a true conflict (both sides advanced) is resolved.
type Strategy string

const (
	// StrategyNewer compares last-modified timestamps; the most recent wins.
	StrategyNewer Strategy = "newer"

	// StrategyCloud always downloads the remote document.
	StrategyCloud Strategy = "cloud"

	// StrategyLocal always uploads the local document.
	StrategyLocal Strategy = "local"

	// StrategyManual defers the decision to the caller; the engine never
	// guesses in this mode.
	StrategyManual Strategy = "manual"
)

// Valid reports whether s is a recognized strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyNewer, StrategyCloud, StrategyLocal, StrategyManual:
		return true
	}
	return false
}

// SyncState is the engine's position in its state machine.
type SyncState string

const (
	StateIdle            SyncState = "idle"
	StateChecking        SyncState = "checking"
	StateUploading       SyncState = "uploading"
	StateDownloading     SyncState = "downloading"
	StateConflictPending SyncState = "conflict_pending"
)

// SyncReport summarizes a completed sync round.
type SyncReport struct {
	// Direction is the resolved data-flow direction for the round.
	Direction Direction `json:"direction"`

	// LocalVersion and RemoteVersion are the versions after the round.
	LocalVersion  uint64 `json:"local_version"`
	RemoteVersion uint64 `json:"remote_version"`

	// Enqueued is true when the operation failed over to the retry queue.
	Enqueued bool `json:"enqueued,omitempty"`
}

// SyncStatus is the on-demand snapshot exposed to callers. It is derived
// from the local store and the last known remote state, never persisted.
type SyncStatus struct {
	Online        bool      `json:"online"`
	Syncing       bool      `json:"syncing"`
	State         SyncState `json:"state"`
	LocalVersion  uint64    `json:"local_version"`
	RemoteVersion uint64    `json:"remote_version"`
	LastSyncAt    time.Time `json:"last_sync_at"`
	NeedsSync     bool      `json:"needs_sync"`
}
