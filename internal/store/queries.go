// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package store

// Client-side (SQLite) queries. The document and marks tables are single-row
// tables pinned to id = 1.
const (
	getDocument = `
		SELECT version, last_modified_at, payload, checksum
		FROM save_document
		WHERE id = 1;`

	upsertDocument = `
		INSERT INTO save_document (id, version, last_modified_at, payload, checksum)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			version = excluded.version,
			last_modified_at = excluded.last_modified_at,
			payload = excluded.payload,
			checksum = excluded.checksum;`

	deleteDocument = `DELETE FROM save_document WHERE id = 1;`

	getMarks = `
		SELECT last_known_remote_version, last_synced_local_version, last_sync_at
		FROM sync_marks
		WHERE id = 1;`

	upsertMarks = `
		INSERT INTO sync_marks (id, last_known_remote_version, last_synced_local_version, last_sync_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_known_remote_version = excluded.last_known_remote_version,
			last_synced_local_version = excluded.last_synced_local_version,
			last_sync_at = excluded.last_sync_at;`

	deleteMarks = `DELETE FROM sync_marks WHERE id = 1;`

	// coalescing enqueue: an existing row of the same kind keeps its id and
	// retry count, only the enqueue time is refreshed
	enqueueOperation = `
		INSERT INTO sync_queue (operation, enqueued_at, retry_count)
		VALUES (?, ?, 0)
		ON CONFLICT(operation) DO UPDATE SET
			enqueued_at = excluded.enqueued_at;`

	getQueueItemByOperation = `
		SELECT id, operation, enqueued_at, retry_count
		FROM sync_queue
		WHERE operation = ?;`

	getQueueItems = `
		SELECT id, operation, enqueued_at, retry_count
		FROM sync_queue
		ORDER BY id ASC;`

	deleteQueueItem = `DELETE FROM sync_queue WHERE id = ?;`

	updateQueueRetryCount = `UPDATE sync_queue SET retry_count = ? WHERE id = ?;`

	clearQueue = `DELETE FROM sync_queue;`
)

// Server-side (PostgreSQL) queries for the reference remote store.
const (
	getRemoteSave = `
		SELECT version, last_modified_at, payload, checksum
		FROM remote_saves
		WHERE owner = $1;`

	getRemoteSaveState = `
		SELECT version, last_modified_at
		FROM remote_saves
		WHERE owner = $1;`

	upsertRemoteSave = `
		INSERT INTO remote_saves (owner, version, last_modified_at, payload, checksum)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT(owner) DO UPDATE SET
			version = excluded.version,
			last_modified_at = excluded.last_modified_at,
			payload = excluded.payload,
			checksum = excluded.checksum;`

	deleteRemoteSave = `DELETE FROM remote_saves WHERE owner = $1;`
)
