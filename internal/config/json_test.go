package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"token": "secret-token", "version": "1.2.3"},
		"storage": {"db": {"dsn": "saves.db"}},
		"adapter": {"http_address": "localhost:8080", "request_timeout": "10s"},
		"sync": {
			"conflict_resolution": "cloud",
			"auto_sync_interval": "2m",
			"max_retries": 5,
			"max_backups": 20
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret-token", cfg.App.Token)
	assert.Equal(t, "saves.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "cloud", cfg.Sync.ConflictResolution)
	assert.Equal(t, 2*time.Minute, cfg.Sync.AutoSyncInterval)
	assert.Equal(t, 5, cfg.Sync.MaxRetries)
	assert.Equal(t, 20, cfg.Sync.MaxBackups)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", raw: `"90s"`, want: 90 * time.Second},
		{name: "nanosecond number", raw: `60000000000`, want: time.Minute},
		{name: "invalid string", raw: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.raw), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
