package adapter

import "errors"

// Sentinel errors returned by Transport implementations. Callers match with
// [errors.Is].
var (
	// ErrNetwork covers every transient transport failure: connection
	// refused, DNS failure, timeout, open circuit breaker, 5xx responses.
	// Recoverable — the engine enqueues the operation and retries later.
	ErrNetwork = errors.New("remote store unreachable")

	// ErrUnauthorized means the remote store rejected the credential.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound means no remote document exists.
	ErrNotFound = errors.New("remote save not found")

	// ErrConflict means the upload was stale: another device pushed a newer
	// revision since the last version probe.
	ErrConflict = errors.New("remote version conflict")

	// ErrBadRequest means the remote store rejected the request shape.
	ErrBadRequest = errors.New("bad request")
)
