package service

import (
	"context"
	"errors"

	"plink_backend/internal/model"
)

// ErrStorage marks failures of the durable store. The transaction that hit it
// was rolled back; the last committed state stays authoritative.
var ErrStorage = errors.New("storage error")

type GameService interface {
	// GameState re-derives a full snapshot from the store.
	GameState(ctx context.Context) (model.GameState, error)
	// Watch returns a stream that yields the latest snapshot immediately and
	// then every committed state. A slow consumer only ever misses
	// intermediate snapshots, never the newest one. The returned func
	// unsubscribes.
	Watch(ctx context.Context) (<-chan model.GameState, func(), error)

	AddCoins(ctx context.Context, amount int64) error
	SpendCoins(ctx context.Context, amount int64) error
	Gamble(ctx context.Context, wager int64) (*model.GambleResult, error)
	PurchaseUpgrade(ctx context.Context, id model.UpgradeID) (*model.PurchaseResult, error)

	UpdateCoinsPerTap(ctx context.Context, value int) error
	UpdateUpgradeLevel(ctx context.Context, id model.UpgradeID, level int) error

	DebugAddCoins(ctx context.Context, amount int64) error
	DebugSetCoins(ctx context.Context, amount int64) error
	DebugMaxUpgrades(ctx context.Context) error
	DebugResetGame(ctx context.Context) error

	Catalog() model.Catalog
}

type SettingsService interface {
	ThemeMode(ctx context.Context) (model.ThemeMode, error)
	SetThemeMode(ctx context.Context, mode model.ThemeMode) error
	ToggleTheme(ctx context.Context) (model.ThemeMode, error)

	DebugMenuEnabled(ctx context.Context) (bool, error)
	SetDebugMenuEnabled(ctx context.Context, enabled bool) error
	ToggleDebugMenu(ctx context.Context) (bool, error)
}

// SessionService is the UI-facing orchestrator: it owns the projected UI
// state, serializes user actions into game operations and drives the
// auto-collector loop from foreground/visibility signals.
type SessionService interface {
	UIState() model.UIState
	OnCoinTap(ctx context.Context) (model.UIState, error)
	PurchaseUpgrade(ctx context.Context, id model.UpgradeID) (*model.PurchaseResult, error)
	Gamble(ctx context.Context, wager int64) (*model.GambleResult, error)
	SetForeground(active bool)
	SetMainScreenVisible(visible bool)
}
