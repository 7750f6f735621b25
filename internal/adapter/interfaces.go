package adapter

import (
	"context"

	"github.com/okulikov/go-save-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transport is the narrow interface to the remote save store. The sync
// engine depends on nothing else about the backend: HTTP, local file, or
// in-memory implementations are interchangeable.
//
// Every method treats an unreachable or timed-out remote identically: the
// returned error wraps [ErrNetwork] and the caller enqueues the operation
// for retry. The credential set via SetToken is opaque to this layer.
type Transport interface {
	// Upload pushes doc as the next remote revision. expectedVersion is the
	// caller's last known remote version; a stale value yields a
	// [ErrConflict]-wrapped error.
	Upload(ctx context.Context, doc models.SaveDocument, expectedVersion uint64) (models.RemoteState, error)

	// Download fetches the current remote document. Returns an
	// [ErrNotFound]-wrapped error when no remote document exists.
	Download(ctx context.Context) (models.SaveDocument, error)

	// GetRemoteVersion probes the remote version without transferring the
	// payload. A zero version means no remote document exists yet.
	GetRemoteVersion(ctx context.Context) (models.RemoteState, error)

	// SetToken stores the opaque credential for subsequent requests.
	SetToken(token string)

	// Token returns the currently held credential, empty if unset.
	Token() string
}
