package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/okulikov/go-save-sync/internal/logger"
)

type autoSyncScheduler struct {
	engine SyncEngine

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewAutoSyncScheduler creates a scheduler that triggers engine.Sync on a
// ticker. The scheduler is idle until Start is called.
func NewAutoSyncScheduler(engine SyncEngine, log *logger.Logger) AutoSyncScheduler {
	return &autoSyncScheduler{engine: engine, logger: log}
}

// Start implements [AutoSyncScheduler]. It stops any previously running job,
// then launches a background goroutine that syncs every interval. If interval
// is zero or negative it defaults to 5 minutes. Ticks are skipped while
// offline and while another sync round is in flight; an in-flight round is
// never interrupted, only the next tick is cancelled.
func (s *autoSyncScheduler) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.tick(jobCtx)
			}
		}
	}()
}

func (s *autoSyncScheduler) tick(ctx context.Context) {
	if !s.engine.Online() {
		s.logger.Debug().Msg("auto sync tick skipped, offline")
		return
	}

	if _, err := s.engine.Sync(ctx); err != nil {
		if errors.Is(err, ErrSyncInProgress) || errors.Is(err, ErrConflictUnresolved) {
			s.logger.Debug().Err(err).Msg("auto sync tick skipped")
			return
		}
		s.logger.Warn().Err(err).Msg("auto sync round failed")
	}
}

// Stop implements [AutoSyncScheduler]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the scheduler is not running.
func (s *autoSyncScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}
