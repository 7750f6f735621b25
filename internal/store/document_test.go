// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulikov/go-save-sync/internal/checksum"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/models"
)

func newTestDocumentStore(t *testing.T) (DocumentStore, string) {
	t.Helper()
	db, path := newTestDB(t)
	return NewDocumentStore(db, logger.Nop()), path
}

func TestDocumentStore_Load_FirstRun(t *testing.T) {
	docs, _ := newTestDocumentStore(t)

	doc, found, err := docs.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found, "first run must report no document, not an error")
	assert.Zero(t, doc.Version)
}

func TestDocumentStore_Save_AssignsVersionAndChecksum(t *testing.T) {
	docs, _ := newTestDocumentStore(t)
	ctx := context.Background()
	payload := []byte(`{"stats":{"level":3}}`)

	doc, err := docs.Save(ctx, payload)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), doc.Version)
	assert.Equal(t, payload, doc.Payload)
	assert.Equal(t, checksum.Compute(payload), doc.Checksum)
	assert.WithinDuration(t, time.Now().UTC(), doc.LastModifiedAt, time.Minute)

	loaded, found, err := docs.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, doc.Version, loaded.Version)
	assert.Equal(t, doc.Payload, loaded.Payload)
	assert.Equal(t, doc.Checksum, loaded.Checksum)
}

// TestDocumentStore_Save_VersionMonotonic verifies that versions strictly
// increase and equal the count of successful saves since the store was
// created or cleared.
func TestDocumentStore_Save_VersionMonotonic(t *testing.T) {
	docs, _ := newTestDocumentStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		doc, err := docs.Save(ctx, []byte{byte(i)})
		require.NoError(t, err)
		assert.Equal(t, uint64(i), doc.Version)
	}

	require.NoError(t, docs.Clear(ctx))

	doc, err := docs.Save(ctx, []byte("fresh start"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), doc.Version, "clear must reset the version sequence")
}

func TestDocumentStore_Clear_RemovesDocumentAndMarks(t *testing.T) {
	docs, _ := newTestDocumentStore(t)
	ctx := context.Background()

	_, err := docs.Save(ctx, []byte("to be cleared"))
	require.NoError(t, err)
	require.NoError(t, docs.SetMarks(ctx, models.SyncMarks{
		LastKnownRemoteVersion: 4,
		LastSyncedLocalVersion: 1,
		LastSyncAt:             time.Now().UTC(),
	}))

	require.NoError(t, docs.Clear(ctx))

	_, found, err := docs.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	marks, err := docs.Marks(ctx)
	require.NoError(t, err)
	assert.Zero(t, marks.LastKnownRemoteVersion)
	assert.Zero(t, marks.LastSyncedLocalVersion)
}

func TestDocumentStore_Marks_RoundTrip(t *testing.T) {
	docs, _ := newTestDocumentStore(t)
	ctx := context.Background()

	// zero values before anything was synced
	marks, err := docs.Marks(ctx)
	require.NoError(t, err)
	assert.Zero(t, marks.LastKnownRemoteVersion)
	assert.True(t, marks.LastSyncAt.IsZero())

	at := time.Now().UTC().Truncate(time.Second)
	want := models.SyncMarks{
		LastKnownRemoteVersion: 7,
		LastSyncedLocalVersion: 5,
		LastSyncAt:             at,
	}
	require.NoError(t, docs.SetMarks(ctx, want))

	got, err := docs.Marks(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.LastKnownRemoteVersion, got.LastKnownRemoteVersion)
	assert.Equal(t, want.LastSyncedLocalVersion, got.LastSyncedLocalVersion)
	assert.True(t, got.LastSyncAt.Equal(at))
}

// TestDocumentStore_SurvivesReopen simulates a process restart: a second
// store over the same file must see the document written by the first.
func TestDocumentStore_SurvivesReopen(t *testing.T) {
	docs, path := newTestDocumentStore(t)
	ctx := context.Background()

	saved, err := docs.Save(ctx, []byte("persistent"))
	require.NoError(t, err)

	reopened := NewDocumentStore(openTestDB(t, path), logger.Nop())
	loaded, found, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, saved.Version, loaded.Version)
	assert.Equal(t, saved.Payload, loaded.Payload)
}
