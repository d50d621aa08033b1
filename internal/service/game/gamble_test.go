package game

import (
	"context"
	"fmt"
	"testing"

	"plink_backend/internal/model"
	"plink_backend/internal/monitoring"
	"plink_backend/internal/repository"
	"plink_backend/internal/widget"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGambleRejectsNonPositiveWager(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 50))

	for _, wager := range []int64{0, -10} {
		res, err := s.Gamble(ctx, wager)
		require.NoError(t, err)
		assert.Equal(t, model.GambleRejected, res.Outcome)
		assert.EqualValues(t, 50, res.Balance)
		assert.NotEqual(t, uuid.Nil, res.RoundID)
	}

	assert.EqualValues(t, 50, repo.value(repository.KeyCoins))
}

func TestGambleRejectsOverWager(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 20))

	res, err := s.Gamble(ctx, 21)
	require.NoError(t, err)
	assert.Equal(t, model.GambleRejected, res.Outcome)
	assert.EqualValues(t, 20, res.Balance)

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 20, st.Coins)
	assert.EqualValues(t, 20, st.TotalCoinsEarned)
}

func TestGambleWinDoublesWager(t *testing.T) {
	s, _ := newTestService(t)
	s.flip = func() bool { return true }
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 100))

	res, err := s.Gamble(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, model.GambleWon, res.Outcome)
	assert.EqualValues(t, 140, res.Balance)

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 140, st.Coins)
	// a won wager counts as earned
	assert.EqualValues(t, 140, st.TotalCoinsEarned)
}

func TestGambleLossForfeitsWager(t *testing.T) {
	s, _ := newTestService(t)
	s.flip = func() bool { return false }
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 100))

	res, err := s.Gamble(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, model.GambleLost, res.Outcome)
	assert.EqualValues(t, 60, res.Balance)

	st, err := s.GameState(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 60, st.Coins)
	assert.EqualValues(t, 100, st.TotalCoinsEarned)
}

func TestGambleAllIn(t *testing.T) {
	s, _ := newTestService(t)
	s.flip = func() bool { return false }
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 30))

	res, err := s.Gamble(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, model.GambleLost, res.Outcome)
	assert.EqualValues(t, 0, res.Balance)
}

func TestGambleEveryOutcomeIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewGameService(
		newMemRepo(),
		&serialTxManager{},
		model.DefaultCatalog(),
		widget.Nop{},
		monitoring.New(),
		zap.New(core).Sugar(),
	).(*serv)
	s.flip = func() bool { return true }
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 10))

	// rejected, then won
	for _, wager := range []int64{0, 5} {
		_, err := s.Gamble(ctx, wager)
		require.NoError(t, err)
	}

	entries := logs.FilterMessage("gamble round").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "rejected", fmt.Sprint(first["outcome"]))
	assert.NotEmpty(t, fmt.Sprint(first["round_id"]))

	second := entries[1].ContextMap()
	assert.Equal(t, "won", fmt.Sprint(second["outcome"]))
}

func TestGambleStorageFailure(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.AddCoins(ctx, 10))
	repo.failing = true

	_, err := s.Gamble(ctx, 5)
	require.Error(t, err)
}
