package game

type GameStateView struct {
	Coins            int64          `json:"coins"`
	CoinsPerTap      int            `json:"coins_per_tap"`
	UpgradeLevels    map[string]int `json:"upgrade_levels"`
	TotalCoinsEarned int64          `json:"total_coins_earned"`
}

type StateResponse struct {
	GameStateView
	IsLoading           bool  `json:"is_loading"`
	TapAnimationCounter int64 `json:"tap_animation_counter"`
}

type GambleRequest struct {
	Wager int64 `json:"wager"` // Размер ставки (положительное целое, >0)
}

type GambleResponse struct {
	RoundID string `json:"round_id"`
	Outcome string `json:"outcome"` // rejected | won | lost
	Wager   int64  `json:"wager"`
	Balance int64  `json:"balance"` // Баланс после
}

type PurchaseRequest struct {
	UpgradeID string `json:"upgrade_id"`
}

type PurchaseResponse struct {
	Outcome   string        `json:"outcome"` // completed | unaffordable | max_level
	UpgradeID string        `json:"upgrade_id"`
	PricePaid int64         `json:"price_paid,omitempty"`
	State     GameStateView `json:"state"`
}

type ShopUpgrade struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	MaxLevel    int    `json:"max_level"`
	Price       int64  `json:"price"`
	Affordable  bool   `json:"affordable"`
	Purchasable bool   `json:"purchasable"`
}

type ShopResponse struct {
	Coins    int64         `json:"coins"`
	Upgrades []ShopUpgrade `json:"upgrades"`
}

type ForegroundRequest struct {
	Active bool `json:"active"`
}

type VisibleRequest struct {
	Visible bool `json:"visible"`
}
