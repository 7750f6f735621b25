package models

import "time"

// SyncOperation is the kind of a queued sync operation.
type SyncOperation string

const (
	OperationUpload   SyncOperation = "upload"
	OperationDownload SyncOperation = "download"
)

// Valid reports whether op is a recognized operation kind.
func (op SyncOperation) Valid() bool {
	return op == OperationUpload || op == OperationDownload
}

// SyncQueueItem is a pending sync operation persisted for later replay.
// Items are ordered FIFO by ID. At most one pending item of a given kind
// exists at a time: enqueuing a duplicate kind coalesces into the existing
// item instead of creating a second one.
type SyncQueueItem struct {
	// ID is assigned by the durable queue and is monotonic within it.
	ID uint64 `json:"id"`

	// Operation is the kind of work to replay.
	Operation SyncOperation `json:"operation"`

	// EnqueuedAt is when the item was first enqueued (or last coalesced).
	EnqueuedAt time.Time `json:"enqueued_at"`

	// RetryCount is the number of failed replay attempts so far. An item
	// whose count exceeds the configured maximum is evicted and reported
	// as abandoned, never retried again.
	RetryCount uint `json:"retry_count"`
}
