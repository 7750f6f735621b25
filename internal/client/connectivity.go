package client

import (
	"context"
	"errors"
	"time"

	"github.com/okulikov/go-save-sync/internal/adapter"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/service"
)

const defaultProbeInterval = 30 * time.Second

// connectivityMonitor feeds the engine's online/offline signal by probing
// the remote version endpoint on a ticker. Any response, including an auth
// or conflict error, proves the remote is reachable; only a network-class
// failure counts as offline.
type connectivityMonitor struct {
	engine    service.SyncEngine
	transport adapter.Transport
	interval  time.Duration

	logger *logger.Logger
}

func newConnectivityMonitor(engine service.SyncEngine, transport adapter.Transport, interval time.Duration, log *logger.Logger) *connectivityMonitor {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &connectivityMonitor{
		engine:    engine,
		transport: transport,
		interval:  interval,
		logger:    log,
	}
}

// Run implements [workers.Worker].
func (m *connectivityMonitor) Run(ctx context.Context) {
	go func() {
		m.probe(ctx)

		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				m.probe(ctx)
			}
		}
	}()
}

func (m *connectivityMonitor) probe(ctx context.Context) {
	_, err := m.transport.GetRemoteVersion(ctx)
	online := err == nil || !errors.Is(err, adapter.ErrNetwork)

	if !online {
		m.logger.Debug().Err(err).Msg("connectivity probe failed")
	}
	m.engine.SetOnline(ctx, online)
}
