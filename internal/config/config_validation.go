// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package config

import (
	"github.com/okulikov/go-save-sync/models"
)

// validate normalizes and checks the final merged [StructuredConfig] before
// it is used at startup. Unset sync policy options receive their documented
// defaults; an explicitly set but unrecognized option is an error.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.ConflictResolution == "" {
		cfg.Sync.ConflictResolution = string(DefaultConflictResolution)
	}
	if !models.Strategy(cfg.Sync.ConflictResolution).Valid() {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.AutoSyncInterval == 0 {
		cfg.Sync.AutoSyncInterval = DefaultAutoSyncInterval
	}
	if cfg.Sync.AutoSyncInterval < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.MaxRetries == 0 {
		cfg.Sync.MaxRetries = DefaultMaxRetries
	}
	if cfg.Sync.MaxRetries < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.MaxBackups == 0 {
		cfg.Sync.MaxBackups = DefaultMaxBackups
	}
	if cfg.Sync.MaxBackups < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	return nil
}

// ValidateClient checks the fields the sync client cannot run without.
// Called by the client composition root after GetStructuredConfig.
func (cfg *StructuredConfig) ValidateClient() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// ValidateServer checks the fields the reference server cannot run without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// Strategy returns the configured conflict-resolution strategy. Only valid
// after validate() has run, which guarantees the value is recognized.
func (cfg *StructuredConfig) Strategy() models.Strategy {
	return models.Strategy(cfg.Sync.ConflictResolution)
}
