package model

import "github.com/google/uuid"

// GameState is an immutable snapshot of the persisted game counters.
type GameState struct {
	Coins            int64
	CoinsPerTap      int
	UpgradeLevels    map[string]int
	TotalCoinsEarned int64
}

// NewGameState returns the first-launch defaults.
func NewGameState() GameState {
	return GameState{
		Coins:            0,
		CoinsPerTap:      1,
		UpgradeLevels:    map[string]int{},
		TotalCoinsEarned: 0,
	}
}

// UpgradeLevel returns the owned level for an upgrade, 0 when absent.
func (s GameState) UpgradeLevel(id UpgradeID) int {
	return s.UpgradeLevels[string(id)]
}

type GambleOutcome string

const (
	// GambleRejected means the wager was invalid or unaffordable; no state changed.
	GambleRejected GambleOutcome = "rejected"
	GambleWon      GambleOutcome = "won"
	GambleLost     GambleOutcome = "lost"
)

type GambleResult struct {
	RoundID uuid.UUID
	Outcome GambleOutcome
	Wager   int64
	Balance int64
}

type PurchaseOutcome string

const (
	PurchaseCompleted    PurchaseOutcome = "completed"
	PurchaseUnaffordable PurchaseOutcome = "unaffordable"
	PurchaseMaxLevel     PurchaseOutcome = "max_level"
)

type PurchaseResult struct {
	Outcome   PurchaseOutcome
	UpgradeID UpgradeID
	PricePaid int64
	State     GameState
}

// UIState is the orchestrator-owned projection consumed by clients.
// TapAnimationCounter increments exactly once per tap call so rapid taps
// each produce one observable signal even when snapshots coalesce.
type UIState struct {
	GameState           GameState
	IsLoading           bool
	TapAnimationCounter int64
}
