package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okulikov/go-save-sync/internal/config"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/migrations"
)

// newTestDB opens a fresh migrated SQLite database in a per-test temp dir.
// File-backed rather than in-memory so reopen-after-restart tests can point
// a second connection at the same path.
func newTestDB(t *testing.T) (*DB, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client.db")
	db := openTestDB(t, dbPath)
	require.NoError(t, migrations.MigrateClient(db.DB))

	return db, dbPath
}

func openTestDB(t *testing.T, dbPath string) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dbPath}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}
