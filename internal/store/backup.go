// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package store

import (
	"bytes"
	"compress/gzip"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/okulikov/go-save-sync/internal/checksum"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/models"
)

type backupStore struct {
	*DB
	maxBackups int
	logger     *logger.Logger
}

// NewBackupStore constructs the SQLite-backed [BackupStore]. Payloads are
// gzip-compressed at rest; the recorded checksum covers the uncompressed
// payload so Restore can detect corruption introduced anywhere in between.
func NewBackupStore(db *DB, maxBackups int, logger *logger.Logger) BackupStore {
	if maxBackups <= 0 {
		maxBackups = 10
	}
	return &backupStore{
		DB:         db,
		maxBackups: maxBackups,
		logger:     logger,
	}
}

func (b *backupStore) Create(ctx context.Context, label string, doc models.SaveDocument) (models.Backup, error) {
	compressed, err := compressPayload(doc.Payload)
	if err != nil {
		return models.Backup{}, fmt.Errorf("compress backup payload: %w", err)
	}

	backup := models.Backup{
		ID:        newBackupID(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
		Version:   doc.Version,
		Checksum:  checksum.Compute(doc.Payload),
	}

	query, args, err := sq.Insert("backups").
		Columns("backup_id", "label", "created_at", "version", "payload", "checksum").
		Values(backup.ID, backup.Label, backup.CreatedAt, backup.Version, compressed, backup.Checksum).
		ToSql()
	if err != nil {
		return models.Backup{}, fmt.Errorf("build backup insert: %w", err)
	}

	if _, err = b.DB.ExecContext(ctx, query, args...); err != nil {
		b.logger.Err(err).
			Str("func", "backupStore.Create").
			Str("label", label).
			Msg("failed to write backup")
		return models.Backup{}, fmt.Errorf("%w: write backup: %v", ErrStorageFailure, err)
	}

	if err = b.Prune(ctx, b.maxBackups); err != nil {
		return models.Backup{}, err
	}

	b.logger.Info().
		Str("func", "backupStore.Create").
		Str("backup_id", backup.ID).
		Str("label", label).
		Uint64("version", doc.Version).
		Msg("backup created")
	return backup, nil
}

func (b *backupStore) List(ctx context.Context) ([]models.Backup, error) {
	query, args, err := sq.Select("backup_id", "label", "created_at", "version", "checksum").
		From("backups").
		OrderBy("seq DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build backup list query: %w", err)
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: read backups: %v", ErrStorageFailure, err)
	}
	defer rows.Close()

	var backups []models.Backup
	for rows.Next() {
		var bk models.Backup
		if err = rows.Scan(&bk.ID, &bk.Label, &bk.CreatedAt, &bk.Version, &bk.Checksum); err != nil {
			return nil, fmt.Errorf("%w: scan backup row: %v", ErrStorageFailure, err)
		}
		backups = append(backups, bk)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate backups: %v", ErrStorageFailure, err)
	}

	return backups, nil
}

func (b *backupStore) Restore(ctx context.Context, id string) (models.SaveDocument, error) {
	query, args, err := sq.Select("created_at", "version", "payload", "checksum").
		From("backups").
		Where(sq.Eq{"backup_id": id}).
		ToSql()
	if err != nil {
		return models.SaveDocument{}, fmt.Errorf("build backup restore query: %w", err)
	}

	var createdAt time.Time
	var version uint64
	var compressed []byte
	var digest string

	row := b.DB.QueryRowContext(ctx, query, args...)
	switch err = row.Scan(&createdAt, &version, &compressed, &digest); {
	case errors.Is(err, sql.ErrNoRows):
		return models.SaveDocument{}, fmt.Errorf("%w: %s", ErrBackupNotFound, id)
	case err != nil:
		return models.SaveDocument{}, fmt.Errorf("%w: read backup %s: %v", ErrStorageFailure, id, err)
	}

	payload, err := decompressPayload(compressed)
	if err != nil {
		b.logger.Err(err).
			Str("func", "backupStore.Restore").
			Str("backup_id", id).
			Msg("backup payload failed to decompress")
		return models.SaveDocument{}, fmt.Errorf("%w: %s: %v", ErrBackupCorrupted, id, err)
	}

	if !checksum.Verify(payload, digest) {
		b.logger.Error().
			Str("func", "backupStore.Restore").
			Str("backup_id", id).
			Msg("backup payload failed checksum verification")
		return models.SaveDocument{}, fmt.Errorf("%w: %s", ErrBackupCorrupted, id)
	}

	return models.SaveDocument{
		Version:        version,
		LastModifiedAt: createdAt,
		Payload:        payload,
		Checksum:       digest,
	}, nil
}

// Prune implements [BackupStore]: oldest snapshots (lowest sequence numbers)
// are evicted first.
func (b *backupStore) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}

	if _, err := b.DB.ExecContext(ctx, `
		DELETE FROM backups
		WHERE seq NOT IN (SELECT seq FROM backups ORDER BY seq DESC LIMIT ?);`,
		keep,
	); err != nil {
		return fmt.Errorf("%w: prune backups: %v", ErrStorageFailure, err)
	}

	return nil
}

func newBackupID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

func compressPayload(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressPayload(compressed []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
