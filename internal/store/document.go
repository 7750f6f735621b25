// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okulikov/go-save-sync/internal/checksum"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/models"
)

type documentStore struct {
	*DB
	logger *logger.Logger
}

// NewDocumentStore constructs the SQLite-backed [DocumentStore]. Every
// mutation commits in a single transaction, so a concurrent reader never
// observes a torn document — the transactional equivalent of
// write-to-temp-then-rename.
func NewDocumentStore(db *DB, logger *logger.Logger) DocumentStore {
	return &documentStore{
		DB:     db,
		logger: logger,
	}
}

func (s *documentStore) Load(ctx context.Context) (models.SaveDocument, bool, error) {
	var doc models.SaveDocument

	row := s.DB.QueryRowContext(ctx, getDocument)
	err := row.Scan(&doc.Version, &doc.LastModifiedAt, &doc.Payload, &doc.Checksum)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SaveDocument{}, false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "documentStore.Load").
			Msg("failed to read save document")
		return models.SaveDocument{}, false, fmt.Errorf("%w: read save document: %v", ErrStorageFailure, err)
	}

	return doc, true, nil
}

func (s *documentStore) Save(ctx context.Context, payload []byte) (models.SaveDocument, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.SaveDocument{}, fmt.Errorf("%w: begin save transaction: %v", ErrStorageFailure, err)
	}
	defer tx.Rollback()

	var prevVersion uint64
	row := tx.QueryRowContext(ctx, getDocument)
	var prev models.SaveDocument
	switch err = row.Scan(&prev.Version, &prev.LastModifiedAt, &prev.Payload, &prev.Checksum); {
	case errors.Is(err, sql.ErrNoRows):
		prevVersion = 0
	case err != nil:
		return models.SaveDocument{}, fmt.Errorf("%w: read previous version: %v", ErrStorageFailure, err)
	default:
		prevVersion = prev.Version
	}

	doc := models.SaveDocument{
		Version:        prevVersion + 1,
		LastModifiedAt: time.Now().UTC(),
		Payload:        payload,
		Checksum:       checksum.Compute(payload),
	}

	if _, err = tx.ExecContext(ctx, upsertDocument,
		doc.Version, doc.LastModifiedAt, doc.Payload, doc.Checksum,
	); err != nil {
		s.logger.Err(err).
			Str("func", "documentStore.Save").
			Uint64("version", doc.Version).
			Msg("failed to write save document")
		return models.SaveDocument{}, fmt.Errorf("%w: write save document: %v", ErrStorageFailure, err)
	}

	if err = tx.Commit(); err != nil {
		return models.SaveDocument{}, fmt.Errorf("%w: commit save document: %v", ErrStorageFailure, err)
	}

	return doc, nil
}

func (s *documentStore) Clear(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin clear transaction: %v", ErrStorageFailure, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteDocument); err != nil {
		return fmt.Errorf("%w: delete save document: %v", ErrStorageFailure, err)
	}
	// bookkeeping refers to the deleted document; reset it in the same commit
	if _, err = tx.ExecContext(ctx, deleteMarks); err != nil {
		return fmt.Errorf("%w: reset sync marks: %v", ErrStorageFailure, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit clear: %v", ErrStorageFailure, err)
	}

	s.logger.Info().Str("func", "documentStore.Clear").Msg("local save document cleared")
	return nil
}

func (s *documentStore) Marks(ctx context.Context) (models.SyncMarks, error) {
	var marks models.SyncMarks
	var lastSyncAt sql.NullTime

	row := s.DB.QueryRowContext(ctx, getMarks)
	err := row.Scan(&marks.LastKnownRemoteVersion, &marks.LastSyncedLocalVersion, &lastSyncAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncMarks{}, nil
	}
	if err != nil {
		return models.SyncMarks{}, fmt.Errorf("%w: read sync marks: %v", ErrStorageFailure, err)
	}

	if lastSyncAt.Valid {
		marks.LastSyncAt = lastSyncAt.Time
	}
	return marks, nil
}

func (s *documentStore) SetMarks(ctx context.Context, marks models.SyncMarks) error {
	var lastSyncAt any
	if !marks.LastSyncAt.IsZero() {
		lastSyncAt = marks.LastSyncAt
	}

	if _, err := s.DB.ExecContext(ctx, upsertMarks,
		marks.LastKnownRemoteVersion, marks.LastSyncedLocalVersion, lastSyncAt,
	); err != nil {
		s.logger.Err(err).
			Str("func", "documentStore.SetMarks").
			Msg("failed to write sync marks")
		return fmt.Errorf("%w: write sync marks: %v", ErrStorageFailure, err)
	}

	return nil
}
