package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/models"
)

func newMockRemoteRepo(t *testing.T) (RemoteSaveRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewRemoteSaveRepository(db, logger.Nop()), mock
}

func TestRemoteSaveRepository_Get_NotFound(t *testing.T) {
	repo, mock := newMockRemoteRepo(t)

	mock.ExpectQuery("SELECT version, last_modified_at, payload, checksum").
		WithArgs("player-1").
		WillReturnError(errNoRowsForMock())

	_, found, err := repo.Get(context.Background(), "player-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteSaveRepository_Get_Found(t *testing.T) {
	repo, mock := newMockRemoteRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT version, last_modified_at, payload, checksum").
		WithArgs("player-1").
		WillReturnRows(sqlmock.NewRows([]string{"version", "last_modified_at", "payload", "checksum"}).
			AddRow(int64(3), now, []byte("payload"), "abc"))

	doc, found, err := repo.Get(context.Background(), "player-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(3), doc.Version)
	assert.Equal(t, []byte("payload"), doc.Payload)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteSaveRepository_State_NotFound(t *testing.T) {
	repo, mock := newMockRemoteRepo(t)

	mock.ExpectQuery("SELECT version, last_modified_at").
		WithArgs("player-1").
		WillReturnError(errNoRowsForMock())

	state, found, err := repo.State(context.Background(), "player-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, state.Version)
}

func TestRemoteSaveRepository_Put_VersionConflict(t *testing.T) {
	repo, mock := newMockRemoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT version FROM remote_saves").
		WithArgs("player-1").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(5)))
	mock.ExpectRollback()

	_, err := repo.Put(context.Background(), "player-1", models.SaveDocument{}, 4)
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteSaveRepository_Put_FirstUpload(t *testing.T) {
	repo, mock := newMockRemoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT version FROM remote_saves").
		WithArgs("player-1").
		WillReturnError(errNoRowsForMock())
	mock.ExpectExec("INSERT INTO remote_saves").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	state, err := repo.Put(context.Background(), "player-1", models.SaveDocument{
		Payload:  []byte("payload"),
		Checksum: "abc",
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), state.Version, "server assigns the next version")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteSaveRepository_Put_StorageFailure(t *testing.T) {
	repo, mock := newMockRemoteRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT version FROM remote_saves").
		WithArgs("player-1").
		WillReturnError(errNoRowsForMock())
	mock.ExpectExec("INSERT INTO remote_saves").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Put(context.Background(), "player-1", models.SaveDocument{}, 0)
	assert.ErrorIs(t, err, ErrStorageFailure)
}

func TestRemoteSaveRepository_Delete(t *testing.T) {
	repo, mock := newMockRemoteRepo(t)

	mock.ExpectExec("DELETE FROM remote_saves").
		WithArgs("player-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "player-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func errNoRowsForMock() error {
	return sql.ErrNoRows
}
