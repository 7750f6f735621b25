// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/models"
)

func newTestQueueStore(t *testing.T, maxRetries int) (QueueStore, string) {
	t.Helper()
	db, path := newTestDB(t)
	return NewQueueStore(db, maxRetries, logger.Nop()), path
}

func TestQueueStore_Enqueue_CoalescesPerKind(t *testing.T) {
	queue, _ := newTestQueueStore(t, 3)
	ctx := context.Background()

	first, err := queue.Enqueue(ctx, models.OperationUpload)
	require.NoError(t, err)

	second, err := queue.Enqueue(ctx, models.OperationUpload)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "duplicate kind must coalesce, not duplicate")

	_, err = queue.Enqueue(ctx, models.OperationDownload)
	require.NoError(t, err)

	items, err := queue.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.OperationUpload, items[0].Operation)
	assert.Equal(t, models.OperationDownload, items[1].Operation)
}

func TestQueueStore_Enqueue_UnknownOperation(t *testing.T) {
	queue, _ := newTestQueueStore(t, 3)

	_, err := queue.Enqueue(context.Background(), models.SyncOperation("defragment"))
	assert.Error(t, err)
}

func TestQueueStore_Drain_RemovesOnSuccess(t *testing.T) {
	queue, _ := newTestQueueStore(t, 3)
	ctx := context.Background()

	_, err := queue.Enqueue(ctx, models.OperationUpload)
	require.NoError(t, err)
	_, err = queue.Enqueue(ctx, models.OperationDownload)
	require.NoError(t, err)

	var applied []models.SyncOperation
	abandoned, err := queue.Drain(ctx, func(item models.SyncQueueItem) error {
		applied = append(applied, item.Operation)
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, abandoned)
	assert.Equal(t, []models.SyncOperation{models.OperationUpload, models.OperationDownload}, applied,
		"drain must process items in enqueue order")

	items, err := queue.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// TestQueueStore_Drain_RetryCap verifies that an always-failing operation is
// retried exactly maxRetries times, then evicted and reported as abandoned
// exactly once — never attempted a fourth time.
func TestQueueStore_Drain_RetryCap(t *testing.T) {
	const maxRetries = 3
	queue, _ := newTestQueueStore(t, maxRetries)
	ctx := context.Background()

	_, err := queue.Enqueue(ctx, models.OperationUpload)
	require.NoError(t, err)

	attempts := 0
	totalAbandoned := 0
	alwaysFail := func(models.SyncQueueItem) error {
		attempts++
		return errors.New("remote still unreachable")
	}

	for i := 0; i < maxRetries+2; i++ {
		abandoned, drainErr := queue.Drain(ctx, alwaysFail)
		require.NoError(t, drainErr)
		totalAbandoned += len(abandoned)
	}

	assert.Equal(t, maxRetries, attempts)
	assert.Equal(t, 1, totalAbandoned, "abandoned exactly once")

	items, err := queue.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestQueueStore_Drain_KeepsFailedItemBelowCap(t *testing.T) {
	queue, _ := newTestQueueStore(t, 3)
	ctx := context.Background()

	_, err := queue.Enqueue(ctx, models.OperationDownload)
	require.NoError(t, err)

	abandoned, err := queue.Drain(ctx, func(models.SyncQueueItem) error {
		return errors.New("transient")
	})
	require.NoError(t, err)
	assert.Empty(t, abandoned)

	items, err := queue.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].RetryCount)
}

// TestQueueStore_PersistsAcrossRestart reconstructs the queue from the same
// database file and confirms the pending items survive in FIFO order.
func TestQueueStore_PersistsAcrossRestart(t *testing.T) {
	queue, path := newTestQueueStore(t, 3)
	ctx := context.Background()

	_, err := queue.Enqueue(ctx, models.OperationUpload)
	require.NoError(t, err)
	_, err = queue.Enqueue(ctx, models.OperationDownload)
	require.NoError(t, err)

	reopened := NewQueueStore(openTestDB(t, path), 3, logger.Nop())

	items, err := reopened.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.OperationUpload, items[0].Operation)
	assert.Equal(t, models.OperationDownload, items[1].Operation)
	assert.Less(t, items[0].ID, items[1].ID)
}

func TestQueueStore_Clear(t *testing.T) {
	queue, _ := newTestQueueStore(t, 3)
	ctx := context.Background()

	_, err := queue.Enqueue(ctx, models.OperationUpload)
	require.NoError(t, err)

	require.NoError(t, queue.Clear(ctx))

	items, err := queue.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
