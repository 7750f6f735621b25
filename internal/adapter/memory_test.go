package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulikov/go-save-sync/internal/checksum"
	"github.com/okulikov/go-save-sync/models"
)

func TestMemoryTransportUploadAssignsVersions(t *testing.T) {
	ctx := context.Background()
	tr := NewMemoryTransport()

	state, err := tr.GetRemoteVersion(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.Version)

	payload := []byte("first")
	doc := models.SaveDocument{Payload: payload, Checksum: checksum.Compute(payload)}

	state, err = tr.Upload(ctx, doc, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), state.Version)

	state, err = tr.Upload(ctx, doc, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), state.Version)
}

func TestMemoryTransportUploadConflict(t *testing.T) {
	ctx := context.Background()
	tr := NewMemoryTransport()
	tr.Seed(models.SaveDocument{Version: 3, Payload: []byte("seeded")})

	_, err := tr.Upload(ctx, models.SaveDocument{Payload: []byte("stale")}, 1)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMemoryTransportDownload(t *testing.T) {
	ctx := context.Background()
	tr := NewMemoryTransport()

	_, err := tr.Download(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	tr.Seed(models.SaveDocument{Version: 2, Payload: []byte("remote")})

	doc, err := tr.Download(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), doc.Version)
	assert.True(t, checksum.Verify(doc.Payload, doc.Checksum))
}

func TestMemoryTransportFaultInjection(t *testing.T) {
	ctx := context.Background()
	tr := NewMemoryTransport()
	tr.Seed(models.SaveDocument{Version: 1, Payload: []byte("remote")})

	tr.FailNetwork = true
	_, err := tr.Download(ctx)
	assert.ErrorIs(t, err, ErrNetwork)
	_, err = tr.GetRemoteVersion(ctx)
	assert.ErrorIs(t, err, ErrNetwork)

	tr.FailNetwork = false
	tr.CorruptDownload = true
	doc, err := tr.Download(ctx)
	require.NoError(t, err)
	assert.False(t, checksum.Verify(doc.Payload, doc.Checksum))
}
