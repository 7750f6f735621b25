// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrateClient_CreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err = MigrateClient(db); err != nil {
		t.Fatalf("MigrateClient: %v", err)
	}

	for _, table := range []string{"save_document", "sync_marks", "sync_queue", "backups"} {
		var name string
		err = db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("expected table %q to exist: %v", table, err)
		}
	}
}

func TestMigrateClient_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err = MigrateClient(db); err != nil {
		t.Fatalf("first MigrateClient: %v", err)
	}
	if err = MigrateClient(db); err != nil {
		t.Fatalf("second MigrateClient: %v", err)
	}
}

func TestMigrateServer_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = MigrateServer(db)
	if err == nil {
		t.Fatal("expected error from MigrateServer, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}
