package game

import (
	"context"
	"testing"

	"plink_backend/internal/model"
	"plink_backend/internal/repository"
	"plink_backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStateDefaults(t *testing.T) {
	s, _ := newTestService(t)

	st, err := s.GameState(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 0, st.Coins)
	assert.Equal(t, 1, st.CoinsPerTap)
	assert.EqualValues(t, 0, st.TotalCoinsEarned)
	assert.Equal(t, 0, st.UpgradeLevel(model.UpgradeTap))
	assert.Equal(t, 0, st.UpgradeLevel(model.UpgradeAutoCollector))
}

func TestAddCoinsMovesBalanceAndTotal(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 15))
	require.NoError(t, s.AddCoins(ctx, 20))

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 35, st.Coins)
	assert.EqualValues(t, 35, st.TotalCoinsEarned)
	assert.EqualValues(t, 35, repo.value(repository.KeyCoins))
}

func TestSpendCoinsClampsAtZero(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 10))
	require.NoError(t, s.SpendCoins(ctx, 25))

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, st.Coins)
	// overdraft never rewinds what was earned
	assert.EqualValues(t, 10, st.TotalCoinsEarned)
}

func TestDebugAddCoinsLeavesTotalEarned(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 5))
	require.NoError(t, s.DebugAddCoins(ctx, 1000))

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1005, st.Coins)
	assert.EqualValues(t, 5, st.TotalCoinsEarned)
}

func TestDebugSetCoins(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 7))
	require.NoError(t, s.DebugSetCoins(ctx, 42))

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 42, st.Coins)
	assert.EqualValues(t, 7, st.TotalCoinsEarned)
}

func TestDebugMaxUpgrades(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.DebugMaxUpgrades(ctx))

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 999_999_999, st.Coins)
	assert.Equal(t, 50, st.UpgradeLevel(model.UpgradeTap))
	assert.Equal(t, 51, st.CoinsPerTap)
	assert.Equal(t, 25, st.UpgradeLevel(model.UpgradeAutoCollector))
}

func TestDebugResetGame(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 100))
	_, err := s.PurchaseUpgrade(ctx, model.UpgradeTap)
	require.NoError(t, err)

	require.NoError(t, s.DebugResetGame(ctx))

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, st.Coins)
	assert.Equal(t, 1, st.CoinsPerTap)
	assert.EqualValues(t, 0, st.TotalCoinsEarned)
	assert.Equal(t, 0, st.UpgradeLevel(model.UpgradeTap))
}

func TestUpdateUpgradeLevelRejectsUnknownID(t *testing.T) {
	s, _ := newTestService(t)

	err := s.UpdateUpgradeLevel(context.Background(), "warp_drive", 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrStorage)
}

func TestStorageFailureSurfacesSentinel(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 30))
	repo.failing = true

	err := s.AddCoins(ctx, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrStorage)
	assert.ErrorIs(t, err, errMediumUnavailable)

	repo.failing = false
	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 30, st.Coins)
}

func TestWatchDeliversLatestState(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	ch, cancel, err := s.Watch(ctx)
	require.NoError(t, err)
	defer cancel()

	st := <-ch
	assert.EqualValues(t, 0, st.Coins)

	require.NoError(t, s.AddCoins(ctx, 3))
	st = <-ch
	assert.EqualValues(t, 3, st.Coins)
}

func TestWatchCollapsesMissedUpdates(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	ch, cancel, err := s.Watch(ctx)
	require.NoError(t, err)
	defer cancel()

	// never drain the initial snapshot; the buffer must end up holding
	// only the newest state
	require.NoError(t, s.AddCoins(ctx, 2))
	require.NoError(t, s.AddCoins(ctx, 3))

	st := <-ch
	assert.EqualValues(t, 5, st.Coins)
}

func TestWatchCancelClosesChannel(t *testing.T) {
	s, _ := newTestService(t)

	ch, cancel, err := s.Watch(context.Background())
	require.NoError(t, err)

	<-ch
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// a second cancel is a no-op
	cancel()
}
