package game

import (
	"context"
	"fmt"

	"plink_backend/internal/model"
	"plink_backend/internal/repository"
	"plink_backend/internal/service"
)

func (s *serv) Catalog() model.Catalog {
	return s.catalog
}

// GameState re-derives a full snapshot from the store, defaulting every
// absent key.
func (s *serv) GameState(ctx context.Context) (model.GameState, error) {
	kv, err := s.repo.Snapshot(ctx)
	if err != nil {
		return model.GameState{}, fmt.Errorf("game state: %w: %w", service.ErrStorage, err)
	}

	st := s.deriveState(kv)

	s.mu.Lock()
	s.latest = st
	s.loaded = true
	s.mu.Unlock()

	return st, nil
}

func (s *serv) Watch(ctx context.Context) (<-chan model.GameState, func(), error) {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()

	if !loaded {
		if _, err := s.GameState(ctx); err != nil {
			return nil, nil, err
		}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	ch := make(chan model.GameState, 1)
	ch <- s.latest
	s.watchers[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if c, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(c)
		}
		s.mu.Unlock()
	}

	return ch, cancel, nil
}

// publish fans a committed snapshot out to every watcher and fires the
// widget-refresh hook. A watcher that has not drained its previous snapshot
// loses it: the channel always holds the newest state.
func (s *serv) publish(st model.GameState) {
	s.mu.Lock()
	s.latest = st
	s.loaded = true
	for _, ch := range s.watchers {
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
	s.mu.Unlock()

	s.metrics.CoinsBalance.Set(float64(st.Coins))
	s.notifier.NotifyCoinsChanged(st)
}

// cachedCoins is the last observed balance, used where a rejected operation
// still reports one without touching the store.
func (s *serv) cachedCoins() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest.Coins
}

func (s *serv) deriveState(kv map[string]int64) model.GameState {
	st := model.NewGameState()
	st.Coins = kv[repository.KeyCoins]
	if v, ok := kv[repository.KeyCoinsPerTap]; ok {
		st.CoinsPerTap = int(v)
	}
	for _, u := range s.catalog {
		st.UpgradeLevels[string(u.ID)] = int(kv[repository.UpgradeLevelKey(u.ID)])
	}
	st.TotalCoinsEarned = kv[repository.KeyTotalCoinsEarned]
	return st
}
