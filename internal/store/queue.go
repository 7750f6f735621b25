// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/models"
)

type queueStore struct {
	*DB
	maxRetries uint
	logger     *logger.Logger

	// serializes Enqueue and Drain: single-writer discipline over the
	// durable queue so a drain cannot race a concurrent enqueue
	mu sync.Mutex
}

// NewQueueStore constructs the SQLite-backed [QueueStore]. maxRetries caps
// replay attempts per item; an item failing that many times is evicted and
// reported as abandoned.
func NewQueueStore(db *DB, maxRetries int, logger *logger.Logger) QueueStore {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &queueStore{
		DB:         db,
		maxRetries: uint(maxRetries),
		logger:     logger,
	}
}

func (q *queueStore) Enqueue(ctx context.Context, op models.SyncOperation) (models.SyncQueueItem, error) {
	if !op.Valid() {
		return models.SyncQueueItem{}, fmt.Errorf("unknown sync operation %q", op)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if _, err := q.DB.ExecContext(ctx, enqueueOperation, string(op), time.Now().UTC()); err != nil {
		q.logger.Err(err).
			Str("func", "queueStore.Enqueue").
			Str("operation", string(op)).
			Msg("failed to enqueue sync operation")
		return models.SyncQueueItem{}, fmt.Errorf("%w: enqueue %s: %v", ErrStorageFailure, op, err)
	}

	var item models.SyncQueueItem
	row := q.DB.QueryRowContext(ctx, getQueueItemByOperation, string(op))
	if err := row.Scan(&item.ID, &item.Operation, &item.EnqueuedAt, &item.RetryCount); err != nil {
		return models.SyncQueueItem{}, fmt.Errorf("%w: read enqueued item: %v", ErrStorageFailure, err)
	}

	q.logger.Debug().
		Str("func", "queueStore.Enqueue").
		Str("operation", string(op)).
		Uint64("id", item.ID).
		Msg("sync operation enqueued")
	return item, nil
}

func (q *queueStore) Items(ctx context.Context) ([]models.SyncQueueItem, error) {
	rows, err := q.DB.QueryContext(ctx, getQueueItems)
	if err != nil {
		return nil, fmt.Errorf("%w: read queue items: %v", ErrStorageFailure, err)
	}
	defer rows.Close()

	var items []models.SyncQueueItem
	for rows.Next() {
		var item models.SyncQueueItem
		if err = rows.Scan(&item.ID, &item.Operation, &item.EnqueuedAt, &item.RetryCount); err != nil {
			return nil, fmt.Errorf("%w: scan queue item: %v", ErrStorageFailure, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate queue items: %v", ErrStorageFailure, err)
	}

	return items, nil
}

// Drain implements [QueueStore]. Replay order is FIFO by id. A failed apply
// increments the item's retry count; once the count reaches the cap the item
// is evicted and collected into the abandoned result instead of being kept
// for a further attempt.
func (q *queueStore) Drain(ctx context.Context, apply func(models.SyncQueueItem) error) ([]models.SyncQueueItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.Items(ctx)
	if err != nil {
		return nil, err
	}

	var abandoned []models.SyncQueueItem
	for _, item := range items {
		if err = ctx.Err(); err != nil {
			return abandoned, err
		}

		applyErr := apply(item)
		if applyErr == nil {
			if _, err = q.DB.ExecContext(ctx, deleteQueueItem, item.ID); err != nil {
				return abandoned, fmt.Errorf("%w: remove replayed item %d: %v", ErrStorageFailure, item.ID, err)
			}
			continue
		}

		item.RetryCount++
		if item.RetryCount >= q.maxRetries {
			if _, err = q.DB.ExecContext(ctx, deleteQueueItem, item.ID); err != nil {
				return abandoned, fmt.Errorf("%w: evict abandoned item %d: %v", ErrStorageFailure, item.ID, err)
			}
			q.logger.Warn().
				Str("func", "queueStore.Drain").
				Str("operation", string(item.Operation)).
				Uint("retry_count", item.RetryCount).
				Msg("sync operation abandoned after retry cap")
			abandoned = append(abandoned, item)
			continue
		}

		if _, err = q.DB.ExecContext(ctx, updateQueueRetryCount, item.RetryCount, item.ID); err != nil {
			return abandoned, fmt.Errorf("%w: update retry count for item %d: %v", ErrStorageFailure, item.ID, err)
		}
		q.logger.Debug().
			Str("func", "queueStore.Drain").
			Str("operation", string(item.Operation)).
			Uint("retry_count", item.RetryCount).
			Err(applyErr).
			Msg("sync operation replay failed, kept for retry")
	}

	return abandoned, nil
}

func (q *queueStore) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, err := q.DB.ExecContext(ctx, clearQueue); err != nil {
		return fmt.Errorf("%w: clear queue: %v", ErrStorageFailure, err)
	}
	return nil
}
