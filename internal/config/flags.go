package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-r remote store address used by the client adapter
//	-d database DSN (SQLite path for the client, PostgreSQL URI for the server)
//	-t opaque bearer token for the remote store
//	-c/-config json file path with configs
//	-conflict-resolution conflict strategy: newer|cloud|local|manual
//	-sync-interval auto-sync period (e.g., "5m", "30s")
//	-max-retries retry cap for queued operations
//	-max-backups retained snapshot cap
//	-request-timeout outbound/inbound request timeout (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var adapterAddress string
	var databaseDSN string
	var token string
	var jsonConfigPath string
	var conflictResolution string
	var syncInterval time.Duration
	var maxRetries int
	var maxBackups int
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Server net address host:port")
	flag.StringVar(&adapterAddress, "r", "", "Remote store address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&token, "t", "", "Remote store bearer token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&conflictResolution, "conflict-resolution", "", "Conflict strategy: newer|cloud|local|manual")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Auto-sync period (e.g., 5m, 30s)")
	flag.IntVar(&maxRetries, "max-retries", 0, "Retry cap for queued operations")
	flag.IntVar(&maxBackups, "max-backups", 0, "Retained snapshot cap")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Token: token,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			ConflictResolution: conflictResolution,
			AutoSyncInterval:   syncInterval,
			MaxRetries:         maxRetries,
			MaxBackups:         maxBackups,
		},
		JSONFilePath: jsonConfigPath,
	}
}
