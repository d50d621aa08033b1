package game

import (
	"context"
	"errors"
	"sync"
	"testing"

	"plink_backend/internal/model"
	"plink_backend/internal/monitoring"
	"plink_backend/internal/repository"
	"plink_backend/internal/widget"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

var errMediumUnavailable = errors.New("storage medium unavailable")

var _ repository.StateRepository = (*memRepo)(nil)

// memRepo is an in-memory StateRepository for tests. Like the real store it
// carries a row per known key; Clear resets values instead of dropping them.
type memRepo struct {
	mu      sync.Mutex
	kv      map[string]int64
	failing bool
}

func newMemRepo() *memRepo {
	return &memRepo{kv: repository.DefaultValues(model.DefaultCatalog())}
}

func (m *memRepo) Init(context.Context) error { return nil }

func (m *memRepo) Snapshot(context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errMediumUnavailable
	}
	out := make(map[string]int64, len(m.kv))
	for k, v := range m.kv {
		out[k] = v
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return 0, errMediumUnavailable
	}
	return m.kv[key], nil
}

func (m *memRepo) Set(_ context.Context, key string, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errMediumUnavailable
	}
	m.kv[key] = value
	return nil
}

func (m *memRepo) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errMediumUnavailable
	}
	m.kv = repository.DefaultValues(model.DefaultCatalog())
	return nil
}

func (m *memRepo) value(key string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kv[key]
}

// serialTxManager serializes transaction bodies like the real store does.
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func (m *serialTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func newTestService(t *testing.T) (*serv, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	s := NewGameService(
		repo,
		&serialTxManager{},
		model.DefaultCatalog(),
		widget.Nop{},
		monitoring.New(),
		zap.NewNop().Sugar(),
	).(*serv)
	return s, repo
}
