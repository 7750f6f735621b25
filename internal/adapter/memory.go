package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okulikov/go-save-sync/internal/checksum"
	"github.com/okulikov/go-save-sync/models"
)

// MemoryTransport is an in-process implementation of [Transport] backed by a
// mutex-guarded document. It mirrors the remote store's version-assignment
// and conflict semantics, and supports fault injection so engine tests can
// exercise offline and corruption paths without a real server.
type MemoryTransport struct {
	mu    sync.RWMutex
	doc   models.SaveDocument
	has   bool
	token string

	// FailNetwork makes every call return ErrNetwork while set.
	FailNetwork bool

	// CorruptDownload makes Download return a document whose checksum no
	// longer matches its payload.
	CorruptDownload bool
}

// NewMemoryTransport returns an empty in-memory transport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{}
}

// Seed installs a remote document directly, bypassing version checks. The
// document's checksum is recomputed from its payload.
func (m *MemoryTransport) Seed(doc models.SaveDocument) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc.Checksum = checksum.Compute(doc.Payload)
	m.doc = doc
	m.has = true
}

// SetToken implements [Transport].
func (m *MemoryTransport) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// Token implements [Transport].
func (m *MemoryTransport) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Upload implements [Transport].
func (m *MemoryTransport) Upload(ctx context.Context, doc models.SaveDocument, expectedVersion uint64) (models.RemoteState, error) {
	if err := ctx.Err(); err != nil {
		return models.RemoteState{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailNetwork {
		return models.RemoteState{}, fmt.Errorf("%w: transport unavailable", ErrNetwork)
	}

	var current uint64
	if m.has {
		current = m.doc.Version
	}
	if expectedVersion != current {
		return models.RemoteState{}, fmt.Errorf("%w: expected remote version %d, have %d", ErrConflict, expectedVersion, current)
	}

	doc.Version = current + 1
	if doc.LastModifiedAt.IsZero() {
		doc.LastModifiedAt = time.Now().UTC()
	}
	m.doc = doc
	m.has = true

	return models.RemoteState{Version: m.doc.Version, LastModifiedAt: m.doc.LastModifiedAt}, nil
}

// Download implements [Transport].
func (m *MemoryTransport) Download(ctx context.Context) (models.SaveDocument, error) {
	if err := ctx.Err(); err != nil {
		return models.SaveDocument{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailNetwork {
		return models.SaveDocument{}, fmt.Errorf("%w: transport unavailable", ErrNetwork)
	}
	if !m.has {
		return models.SaveDocument{}, fmt.Errorf("%w: no remote document", ErrNotFound)
	}

	doc := m.doc
	doc.Payload = append([]byte(nil), m.doc.Payload...)
	if m.CorruptDownload && len(doc.Payload) > 0 {
		doc.Payload[0] ^= 0xFF
	}

	return doc, nil
}

// GetRemoteVersion implements [Transport]. A missing remote document reports
// version zero rather than an error.
func (m *MemoryTransport) GetRemoteVersion(ctx context.Context) (models.RemoteState, error) {
	if err := ctx.Err(); err != nil {
		return models.RemoteState{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailNetwork {
		return models.RemoteState{}, fmt.Errorf("%w: transport unavailable", ErrNetwork)
	}
	if !m.has {
		return models.RemoteState{}, nil
	}

	return models.RemoteState{Version: m.doc.Version, LastModifiedAt: m.doc.LastModifiedAt}, nil
}
