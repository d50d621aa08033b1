package repository

import (
	"context"

	"plink_backend/internal/model"
)

// Persisted game-state keys. One row per key, durable across restarts.
const (
	KeyCoins            = "coins"
	KeyCoinsPerTap      = "coins_per_tap"
	KeyTotalCoinsEarned = "total_coins_earned"
)

// UpgradeLevelKey is the per-upgrade level key, e.g. "upgrade_level_tap_upgrade".
func UpgradeLevelKey(id model.UpgradeID) string {
	return "upgrade_level_" + string(id)
}

// DefaultValues lists every known key with its first-launch value. The store
// keeps one row per key at all times; SELECT ... FOR UPDATE locks nothing for
// rows that do not exist, so a key without a row would open a lost-update
// window between two concurrent credits.
func DefaultValues(catalog model.Catalog) map[string]int64 {
	kv := map[string]int64{
		KeyCoins:            0,
		KeyCoinsPerTap:      1,
		KeyTotalCoinsEarned: 0,
	}
	for _, u := range catalog {
		kv[UpgradeLevelKey(u.ID)] = 0
	}
	return kv
}

// StateRepository is the durable key-value store behind the game state.
// Mutations must run inside a transaction-manager scope; Snapshot locks the
// rows it reads there, so concurrent transactions serialize instead of
// interleaving partial writes. Init seeds a row per known key and Clear
// resets those rows to their defaults rather than deleting them.
type StateRepository interface {
	Init(ctx context.Context) error
	Snapshot(ctx context.Context) (map[string]int64, error)
	Get(ctx context.Context, key string) (int64, error)
	Set(ctx context.Context, key string, value int64) error
	Clear(ctx context.Context) error
}

// SettingsRepository is the separate store for app-level settings.
type SettingsRepository interface {
	Init(ctx context.Context) error
	ThemeMode(ctx context.Context) (model.ThemeMode, error)
	SetThemeMode(ctx context.Context, mode model.ThemeMode) error
	DebugMenuEnabled(ctx context.Context) (bool, error)
	SetDebugMenuEnabled(ctx context.Context, enabled bool) error
}
