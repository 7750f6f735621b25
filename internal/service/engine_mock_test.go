package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/okulikov/go-save-sync/internal/config"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/mock"
	"github.com/okulikov/go-save-sync/models"
)

func newMockedEngine(t *testing.T, ctrl *gomock.Controller) (SyncEngine, *mock.MockDocumentStore, *mock.MockQueueStore, *mock.MockBackupStore, *mock.MockTransport) {
	t.Helper()

	docs := mock.NewMockDocumentStore(ctrl)
	queue := mock.NewMockQueueStore(ctrl)
	backups := mock.NewMockBackupStore(ctrl)
	transport := mock.NewMockTransport(ctrl)

	engine := NewSyncEngine(
		docs, queue, backups, transport,
		config.Sync{ConflictResolution: string(models.StrategyNewer), MaxRetries: 3, MaxBackups: 10},
		nil,
		logger.Nop(),
	)

	return engine, docs, queue, backups, transport
}

func TestUploadSendsLastKnownRemoteVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, docs, _, _, transport := newMockedEngine(t, ctrl)
	ctx := context.Background()

	doc := models.SaveDocument{Version: 5, Payload: []byte("payload")}
	marks := models.SyncMarks{LastKnownRemoteVersion: 4, LastSyncedLocalVersion: 4}

	docs.EXPECT().Load(ctx).Return(doc, true, nil)
	docs.EXPECT().Marks(ctx).Return(marks, nil)

	// The optimistic check must carry the last remote version this client
	// saw, not the local document's version.
	transport.EXPECT().
		Upload(ctx, doc, uint64(4)).
		Return(models.RemoteState{Version: 5, LastModifiedAt: time.Now().UTC()}, nil)

	var recorded models.SyncMarks
	docs.EXPECT().
		SetMarks(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.SyncMarks) error {
			recorded = m
			return nil
		})

	report, err := engine.Upload(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.DirectionUpload, report.Direction)
	assert.Equal(t, uint64(5), report.RemoteVersion)
	assert.Equal(t, uint64(5), recorded.LastKnownRemoteVersion)
	assert.Equal(t, uint64(5), recorded.LastSyncedLocalVersion)
	assert.False(t, recorded.LastSyncAt.IsZero())
}

func TestSyncProbeFailureLeavesQueueUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, docs, _, _, transport := newMockedEngine(t, ctrl)
	ctx := context.Background()

	probeErr := assert.AnError
	transport.EXPECT().GetRemoteVersion(ctx).Return(models.RemoteState{}, probeErr)

	// No Enqueue expectation on the queue mock: any call would fail the test.
	_, err := engine.Sync(ctx)
	assert.ErrorIs(t, err, probeErr)

	docs.EXPECT().Load(ctx).Return(models.SaveDocument{}, false, nil)
	docs.EXPECT().Marks(ctx).Return(models.SyncMarks{}, nil)

	status, err := engine.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, status.State)
	assert.False(t, status.Syncing)
}
