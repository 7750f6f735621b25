package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/okulikov/go-save-sync/models"
)

func TestResolverDecisionMatrix(t *testing.T) {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	doc := func(version uint64, modifiedAt time.Time) models.SaveDocument {
		return models.SaveDocument{Version: version, LastModifiedAt: modifiedAt}
	}
	remote := func(version uint64, modifiedAt time.Time) models.RemoteState {
		return models.RemoteState{Version: version, LastModifiedAt: modifiedAt}
	}
	marks := func(remoteVersion, localVersion uint64) models.SyncMarks {
		return models.SyncMarks{LastKnownRemoteVersion: remoteVersion, LastSyncedLocalVersion: localVersion}
	}

	tests := []struct {
		name       string
		strategy   models.Strategy
		local      models.SaveDocument
		localFound bool
		marks      models.SyncMarks
		remote     models.RemoteState
		want       models.Direction
	}{
		{
			name:       "in sync",
			strategy:   models.StrategyNewer,
			local:      doc(3, base),
			localFound: true,
			marks:      marks(3, 3),
			remote:     remote(3, base),
			want:       models.DirectionNone,
		},
		{
			name:       "only remote advanced",
			strategy:   models.StrategyNewer,
			local:      doc(3, base),
			localFound: true,
			marks:      marks(3, 3),
			remote:     remote(5, base.Add(time.Hour)),
			want:       models.DirectionDownload,
		},
		{
			name:       "only local advanced",
			strategy:   models.StrategyNewer,
			local:      doc(6, base.Add(time.Hour)),
			localFound: true,
			marks:      marks(3, 3),
			remote:     remote(3, base),
			want:       models.DirectionUpload,
		},
		{
			name:       "only local advanced, cloud strategy does not fire",
			strategy:   models.StrategyCloud,
			local:      doc(6, base.Add(time.Hour)),
			localFound: true,
			marks:      marks(3, 3),
			remote:     remote(3, base),
			want:       models.DirectionUpload,
		},
		{
			name:       "both advanced, newer picks more recent remote",
			strategy:   models.StrategyNewer,
			local:      doc(5, time.Unix(100, 0)),
			localFound: true,
			marks:      marks(4, 4),
			remote:     remote(7, time.Unix(200, 0)),
			want:       models.DirectionDownload,
		},
		{
			name:       "both advanced, newer picks more recent local",
			strategy:   models.StrategyNewer,
			local:      doc(5, time.Unix(300, 0)),
			localFound: true,
			marks:      marks(4, 4),
			remote:     remote(7, time.Unix(200, 0)),
			want:       models.DirectionUpload,
		},
		{
			name:       "both advanced, newer tie keeps local",
			strategy:   models.StrategyNewer,
			local:      doc(5, base),
			localFound: true,
			marks:      marks(4, 4),
			remote:     remote(7, base),
			want:       models.DirectionUpload,
		},
		{
			name:       "both advanced, cloud strategy",
			strategy:   models.StrategyCloud,
			local:      doc(5, time.Unix(300, 0)),
			localFound: true,
			marks:      marks(4, 4),
			remote:     remote(7, time.Unix(200, 0)),
			want:       models.DirectionDownload,
		},
		{
			name:       "both advanced, local strategy",
			strategy:   models.StrategyLocal,
			local:      doc(5, time.Unix(100, 0)),
			localFound: true,
			marks:      marks(4, 4),
			remote:     remote(7, time.Unix(200, 0)),
			want:       models.DirectionUpload,
		},
		{
			name:       "both advanced, manual strategy defers",
			strategy:   models.StrategyManual,
			local:      doc(5, time.Unix(100, 0)),
			localFound: true,
			marks:      marks(4, 4),
			remote:     remote(7, time.Unix(200, 0)),
			want:       models.DirectionConflict,
		},
		{
			name:       "no local document, remote populated",
			strategy:   models.StrategyManual,
			localFound: false,
			remote:     remote(2, base),
			want:       models.DirectionDownload,
		},
		{
			name:       "no local document, empty remote",
			strategy:   models.StrategyNewer,
			localFound: false,
			remote:     remote(0, time.Time{}),
			want:       models.DirectionNone,
		},
		{
			name:       "first local save, empty remote",
			strategy:   models.StrategyNewer,
			local:      doc(1, base),
			localFound: true,
			marks:      marks(0, 0),
			remote:     remote(0, time.Time{}),
			want:       models.DirectionUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.strategy)
			got := r.Resolve(tt.local, tt.localFound, tt.marks, tt.remote)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolverIsDeterministic(t *testing.T) {
	r := NewResolver(models.StrategyNewer)
	local := models.SaveDocument{Version: 5, LastModifiedAt: time.Unix(100, 0)}
	marks := models.SyncMarks{LastKnownRemoteVersion: 4, LastSyncedLocalVersion: 4}
	remote := models.RemoteState{Version: 7, LastModifiedAt: time.Unix(200, 0)}

	first := r.Resolve(local, true, marks, remote)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, r.Resolve(local, true, marks, remote))
	}
}

func TestResolverInvalidStrategyFallsBackToNewer(t *testing.T) {
	r := NewResolver(models.Strategy("coin-flip"))
	assert.Equal(t, models.StrategyNewer, r.Strategy())
}
