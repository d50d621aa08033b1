package session

import (
	"context"
	"time"

	"plink_backend/internal/model"
)

// evaluate re-derives the desired collector state from the latest snapshot
// and lifecycle flags, then transitions. Called only from the Run loop, so
// start/stop never race.
func (s *Session) evaluate(ctx context.Context) {
	s.mu.Lock()
	desired := s.foreground && s.visible && s.collectorLevelLocked() > 0
	running := s.collectorStop != nil
	s.mu.Unlock()

	switch {
	case desired && !running:
		s.startCollector(ctx)
	case !desired && running:
		s.stopCollector()
	}
}

func (s *Session) collectorLevelLocked() int {
	return s.state.UpgradeLevel(model.UpgradeAutoCollector)
}

func (s *Session) collectorLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collectorLevelLocked()
}

// startCollector spawns the tick loop. Any previous instance is cancelled and
// drained first, so at most one loop ever runs.
func (s *Session) startCollector(ctx context.Context) {
	s.stopCollector()

	cctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	s.collectorStop = cancel
	s.collectorDone = done
	s.mu.Unlock()

	s.lg.Debugw("auto-collector started", "interval", s.interval)

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-cctx.Done():
				return
			case <-ticker.C:
				level := s.collectorLevel()
				if level <= 0 {
					continue
				}
				if err := s.game.AddCoins(cctx, int64(level)); err != nil {
					// a missed tick needs no catch-up; the next one credits
					// the correct amount again
					s.lg.Warnw("auto-collect tick failed", "err", err)
					continue
				}
				s.metrics.CollectorTicks.Inc()
			}
		}
	}()
}

func (s *Session) stopCollector() {
	s.mu.Lock()
	cancel := s.collectorStop
	done := s.collectorDone
	s.collectorStop = nil
	s.collectorDone = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.lg.Debugw("auto-collector stopped")
}
