package settings

import (
	"context"
	"sync"
	"testing"

	"plink_backend/internal/model"
	"plink_backend/internal/repository"
	"plink_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSettingsRepo struct {
	mu      sync.Mutex
	theme   model.ThemeMode
	debug   bool
	failing bool
	err     error
}

var _ repository.SettingsRepository = (*memSettingsRepo)(nil)

func (m *memSettingsRepo) Init(context.Context) error { return nil }

func (m *memSettingsRepo) ThemeMode(context.Context) (model.ThemeMode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return model.ThemeSystem, m.err
	}
	return m.theme, nil
}

func (m *memSettingsRepo) SetThemeMode(_ context.Context, mode model.ThemeMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return m.err
	}
	m.theme = mode
	return nil
}

func (m *memSettingsRepo) DebugMenuEnabled(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.debug, nil
}

func (m *memSettingsRepo) SetDebugMenuEnabled(_ context.Context, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debug = enabled
	return nil
}

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

func TestToggleTheme(t *testing.T) {
	repo := &memSettingsRepo{}
	s := NewSettingsService(repo, &serialTxManager{})
	ctx := context.Background()

	// SYSTEM toggles to DARK on the first flip
	mode, err := s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, mode)

	mode, err = s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, mode)

	mode, err = s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, mode)

	stored, err := s.ThemeMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, stored)
}

func TestSetThemeMode(t *testing.T) {
	repo := &memSettingsRepo{}
	s := NewSettingsService(repo, &serialTxManager{})
	ctx := context.Background()

	require.NoError(t, s.SetThemeMode(ctx, model.ThemeLight))

	mode, err := s.ThemeMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, mode)
}

func TestToggleDebugMenu(t *testing.T) {
	repo := &memSettingsRepo{}
	s := NewSettingsService(repo, &serialTxManager{})
	ctx := context.Background()

	enabled, err := s.ToggleDebugMenu(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = s.ToggleDebugMenu(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestThemeModeStorageFailure(t *testing.T) {
	repo := &memSettingsRepo{failing: true, err: assert.AnError}
	s := NewSettingsService(repo, &serialTxManager{})

	_, err := s.ThemeMode(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrStorage)
	assert.ErrorIs(t, err, assert.AnError)
}
