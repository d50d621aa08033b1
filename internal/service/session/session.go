package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"plink_backend/internal/model"
	"plink_backend/internal/monitoring"
	"plink_backend/internal/service"

	"go.uber.org/zap"
)

type signalKind int

const (
	sigForeground signalKind = iota
	sigVisible
)

type signal struct {
	kind signalKind
	on   bool
}

// Session bridges persisted game state to the UI-facing projection and owns
// the auto-collector loop. Foreground/visibility signals and snapshot updates
// feed one event loop (Run), which keeps the collector state machine in
// exactly one of STOPPED or RUNNING.
type Session struct {
	game     service.GameService
	interval time.Duration
	metrics  *monitoring.Metrics
	lg       *zap.SugaredLogger

	signals chan signal

	tapCounter atomic.Int64

	mu         sync.Mutex
	state      model.GameState
	loading    bool
	foreground bool
	visible    bool
	// collectorStop is non-nil exactly while the tick loop runs.
	collectorStop context.CancelFunc
	collectorDone chan struct{}
}

func New(game service.GameService, interval time.Duration, metrics *monitoring.Metrics, lg *zap.SugaredLogger) *Session {
	return &Session{
		game:     game,
		interval: interval,
		metrics:  metrics,
		lg:       lg,
		signals:  make(chan signal, 16),
		state:    model.NewGameState(),
		loading:  true,
	}
}

// Run consumes snapshot updates and lifecycle signals until ctx is done. It
// is the only goroutine that starts or stops the collector loop.
func (s *Session) Run(ctx context.Context) error {
	ch, cancel, err := s.game.Watch(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			s.stopCollector()
			return ctx.Err()

		case st, ok := <-ch:
			if !ok {
				s.stopCollector()
				return nil
			}
			s.mu.Lock()
			s.state = st
			s.loading = false
			s.mu.Unlock()
			s.evaluate(ctx)

		case sig := <-s.signals:
			s.mu.Lock()
			switch sig.kind {
			case sigForeground:
				s.foreground = sig.on
			case sigVisible:
				s.visible = sig.on
			}
			s.mu.Unlock()
			s.evaluate(ctx)
		}
	}
}

// SetForeground reports whether the app is in the foreground.
func (s *Session) SetForeground(active bool) {
	s.send(signal{kind: sigForeground, on: active})
}

// SetMainScreenVisible reports whether the main screen is showing.
func (s *Session) SetMainScreenVisible(visible bool) {
	s.send(signal{kind: sigVisible, on: visible})
}

// send never blocks the caller. A full buffer means the Run loop has exited
// or is far behind; either way holding the HTTP handler hostage helps nothing.
func (s *Session) send(sig signal) {
	select {
	case s.signals <- sig:
	default:
	}
}

func (s *Session) UIState() model.UIState {
	s.mu.Lock()
	st := s.state
	loading := s.loading
	s.mu.Unlock()

	return model.UIState{
		GameState:           st,
		IsLoading:           loading,
		TapAnimationCounter: s.tapCounter.Load(),
	}
}

// OnCoinTap bumps the animation counter exactly once per call, before the
// storage round-trip, so every rapid tap yields one observable signal even
// when snapshot updates coalesce.
func (s *Session) OnCoinTap(ctx context.Context) (model.UIState, error) {
	s.tapCounter.Add(1)
	s.metrics.TapsTotal.Inc()

	s.mu.Lock()
	perTap := s.state.CoinsPerTap
	s.mu.Unlock()

	if err := s.game.AddCoins(ctx, int64(perTap)); err != nil {
		return s.UIState(), err
	}
	return s.UIState(), nil
}

// PurchaseUpgrade pre-validates against the in-memory snapshot for fast
// feedback; the game service re-validates inside the transaction, which is
// the authoritative check.
func (s *Session) PurchaseUpgrade(ctx context.Context, id model.UpgradeID) (*model.PurchaseResult, error) {
	u, ok := s.game.Catalog().ByID(id)
	if !ok {
		return s.game.PurchaseUpgrade(ctx, id)
	}

	s.mu.Lock()
	st := s.state
	s.mu.Unlock()

	level := st.UpgradeLevel(id)
	if !u.IsPurchasable(level) {
		return &model.PurchaseResult{
			Outcome:   model.PurchaseMaxLevel,
			UpgradeID: id,
			State:     st,
		}, nil
	}
	if !u.IsAffordable(st.Coins, level) {
		return &model.PurchaseResult{
			Outcome:   model.PurchaseUnaffordable,
			UpgradeID: id,
			State:     st,
		}, nil
	}

	return s.game.PurchaseUpgrade(ctx, id)
}

// Gamble delegates to the game service and reports the balance from a fresh
// read, never the pre-transaction snapshot.
func (s *Session) Gamble(ctx context.Context, wager int64) (*model.GambleResult, error) {
	res, err := s.game.Gamble(ctx, wager)
	if err != nil {
		return nil, err
	}

	st, err := s.game.GameState(ctx)
	if err == nil {
		res.Balance = st.Coins
	}
	return res, nil
}
