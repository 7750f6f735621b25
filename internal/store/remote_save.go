package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/models"
)

type remoteSaveRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteSaveRepository constructs the PostgreSQL-backed
// [RemoteSaveRepository] used by the reference remote-store server.
func NewRemoteSaveRepository(db *DB, logger *logger.Logger) RemoteSaveRepository {
	return &remoteSaveRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *remoteSaveRepository) Get(ctx context.Context, owner string) (models.SaveDocument, bool, error) {
	var doc models.SaveDocument

	row := r.DB.QueryRowContext(ctx, getRemoteSave, owner)
	err := row.Scan(&doc.Version, &doc.LastModifiedAt, &doc.Payload, &doc.Checksum)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SaveDocument{}, false, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "remoteSaveRepository.Get").
			Bool("retryable", isRetryablePostgresError(err)).
			Msg("failed to read remote save")
		return models.SaveDocument{}, false, fmt.Errorf("%w: read remote save: %v", ErrStorageFailure, err)
	}

	return doc, true, nil
}

func (r *remoteSaveRepository) State(ctx context.Context, owner string) (models.RemoteState, bool, error) {
	var state models.RemoteState

	row := r.DB.QueryRowContext(ctx, getRemoteSaveState, owner)
	err := row.Scan(&state.Version, &state.LastModifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteState{}, false, nil
	}
	if err != nil {
		return models.RemoteState{}, false, fmt.Errorf("%w: read remote save state: %v", ErrStorageFailure, err)
	}

	return state, true, nil
}

// Put implements [RemoteSaveRepository]. The version check and the write
// happen in one transaction with the current row locked, so two devices
// uploading concurrently cannot both succeed against the same base version.
func (r *remoteSaveRepository) Put(ctx context.Context, owner string, doc models.SaveDocument, expectedVersion uint64) (models.RemoteState, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("%w: begin put transaction: %v", ErrStorageFailure, err)
	}
	defer tx.Rollback()

	var currentVersion uint64
	row := tx.QueryRowContext(ctx, `SELECT version FROM remote_saves WHERE owner = $1 FOR UPDATE;`, owner)
	switch err = row.Scan(&currentVersion); {
	case errors.Is(err, sql.ErrNoRows):
		currentVersion = 0
	case err != nil:
		return models.RemoteState{}, fmt.Errorf("%w: read current remote version: %v", ErrStorageFailure, err)
	}

	if currentVersion != expectedVersion {
		r.logger.Warn().
			Str("func", "remoteSaveRepository.Put").
			Uint64("current_version", currentVersion).
			Uint64("expected_version", expectedVersion).
			Msg("stale upload rejected")
		return models.RemoteState{}, fmt.Errorf("%w: have %d, expected %d", ErrVersionConflict, currentVersion, expectedVersion)
	}

	state := models.RemoteState{
		Version:        currentVersion + 1,
		LastModifiedAt: time.Now().UTC(),
	}

	if _, err = tx.ExecContext(ctx, upsertRemoteSave,
		owner, state.Version, state.LastModifiedAt, doc.Payload, doc.Checksum,
	); err != nil {
		if isUniqueViolation(err) {
			return models.RemoteState{}, fmt.Errorf("%w: concurrent upload", ErrVersionConflict)
		}
		r.logger.Err(err).
			Str("func", "remoteSaveRepository.Put").
			Msg("failed to write remote save")
		return models.RemoteState{}, fmt.Errorf("%w: write remote save: %v", ErrStorageFailure, err)
	}

	if err = tx.Commit(); err != nil {
		return models.RemoteState{}, fmt.Errorf("%w: commit remote save: %v", ErrStorageFailure, err)
	}

	return state, nil
}

func (r *remoteSaveRepository) Delete(ctx context.Context, owner string) error {
	if _, err := r.DB.ExecContext(ctx, deleteRemoteSave, owner); err != nil {
		return fmt.Errorf("%w: delete remote save: %v", ErrStorageFailure, err)
	}

	r.logger.Info().Str("func", "remoteSaveRepository.Delete").Msg("remote save deleted")
	return nil
}
