package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okulikov/go-save-sync/models"
)

// MemoryRemoteSaveRepository is an in-memory [RemoteSaveRepository] used by
// handler tests and local single-process setups.
type MemoryRemoteSaveRepository struct {
	mu   sync.RWMutex
	docs map[string]models.SaveDocument
}

// NewMemoryRemoteSaveRepository constructs an empty in-memory repository.
func NewMemoryRemoteSaveRepository() *MemoryRemoteSaveRepository {
	return &MemoryRemoteSaveRepository{
		docs: make(map[string]models.SaveDocument),
	}
}

func (m *MemoryRemoteSaveRepository) Get(_ context.Context, owner string) (models.SaveDocument, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[owner]
	return doc, ok, nil
}

func (m *MemoryRemoteSaveRepository) State(_ context.Context, owner string) (models.RemoteState, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[owner]
	if !ok {
		return models.RemoteState{}, false, nil
	}
	return models.RemoteState{Version: doc.Version, LastModifiedAt: doc.LastModifiedAt}, true, nil
}

func (m *MemoryRemoteSaveRepository) Put(_ context.Context, owner string, doc models.SaveDocument, expectedVersion uint64) (models.RemoteState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var currentVersion uint64
	if existing, ok := m.docs[owner]; ok {
		currentVersion = existing.Version
	}
	if currentVersion != expectedVersion {
		return models.RemoteState{}, fmt.Errorf("%w: have %d, expected %d", ErrVersionConflict, currentVersion, expectedVersion)
	}

	stored := models.SaveDocument{
		Version:        currentVersion + 1,
		LastModifiedAt: time.Now().UTC(),
		Payload:        append([]byte(nil), doc.Payload...),
		Checksum:       doc.Checksum,
	}
	m.docs[owner] = stored

	return models.RemoteState{Version: stored.Version, LastModifiedAt: stored.LastModifiedAt}, nil
}

func (m *MemoryRemoteSaveRepository) Delete(_ context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, owner)
	return nil
}
