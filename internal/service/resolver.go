// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"github.com/okulikov/go-save-sync/models"
)

// Resolver decides which way data should flow for a sync round by comparing
// the local document and the remote state against the bookkeeping recorded
// after the last successful sync. Resolution is a pure function of its
// inputs.
type Resolver struct {
	strategy models.Strategy
}

// NewResolver returns a Resolver applying strategy to true conflicts. An
// unrecognized strategy falls back to newer-wins.
func NewResolver(strategy models.Strategy) *Resolver {
	if !strategy.Valid() {
		strategy = models.StrategyNewer
	}
	return &Resolver{strategy: strategy}
}

// Strategy returns the configured conflict strategy.
func (r *Resolver) Strategy() models.Strategy {
	return r.strategy
}

// Resolve picks a direction. The unambiguous cases are checked first, in
// order, and short-circuit; the configured strategy is consulted only when
// both sides advanced independently since the last sync:
//
//  1. neither side advanced -> None
//  2. only the remote advanced -> Download
//  3. only the local advanced -> Upload
//  4. both advanced -> strategy (newer compares timestamps, cloud always
//     downloads, local always uploads, manual returns Conflict)
//
// localFound is false when no local document exists yet; a populated remote
// then resolves to Download, an empty one to None.
func (r *Resolver) Resolve(local models.SaveDocument, localFound bool, marks models.SyncMarks, remote models.RemoteState) models.Direction {
	if !localFound {
		if remote.Version > 0 {
			return models.DirectionDownload
		}
		return models.DirectionNone
	}

	remoteAdvanced := remote.Version > marks.LastKnownRemoteVersion
	localAdvanced := local.Version > marks.LastSyncedLocalVersion

	switch {
	case !remoteAdvanced && !localAdvanced:
		return models.DirectionNone
	case remoteAdvanced && !localAdvanced:
		return models.DirectionDownload
	case localAdvanced && !remoteAdvanced:
		return models.DirectionUpload
	}

	switch r.strategy {
	case models.StrategyCloud:
		return models.DirectionDownload
	case models.StrategyLocal:
		return models.DirectionUpload
	case models.StrategyManual:
		return models.DirectionConflict
	default:
		// newer: most recent modification wins; the local side wins a tie
		// so a round-tripped timestamp cannot overwrite local work.
		if remote.LastModifiedAt.After(local.LastModifiedAt) {
			return models.DirectionDownload
		}
		return models.DirectionUpload
	}
}
