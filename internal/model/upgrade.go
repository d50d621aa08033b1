package model

// UpgradeID identifies one of the fixed purchasable upgrades. The set is
// closed: the catalog only ever contains the two IDs below.
type UpgradeID string

const (
	UpgradeTap           UpgradeID = "tap_upgrade"
	UpgradeAutoCollector UpgradeID = "auto_collector"
)

type Upgrade struct {
	ID          UpgradeID
	Title       string
	Description string
	BasePrice   int64
	MaxLevel    int
	// Multiplier is the variant-specific price-curve factor.
	Multiplier int64
}

// Price is the cost of buying the next level when currentLevel is owned.
func (u Upgrade) Price(currentLevel int) int64 {
	return u.BasePrice * int64(currentLevel+1) * u.Multiplier
}

func (u Upgrade) IsAffordable(coins int64, currentLevel int) bool {
	return coins >= u.Price(currentLevel)
}

func (u Upgrade) IsPurchasable(currentLevel int) bool {
	return currentLevel < u.MaxLevel
}

type Catalog []Upgrade

func (c Catalog) ByID(id UpgradeID) (Upgrade, bool) {
	for _, u := range c {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

// DefaultCatalog matches the shipped game balance.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:          UpgradeTap,
			Title:       "Better Finger",
			Description: "Increases coins per tap",
			BasePrice:   15,
			MaxLevel:    50,
			Multiplier:  2,
		},
		{
			ID:          UpgradeAutoCollector,
			Title:       "Auto Collector",
			Description: "Generates 1 coin per second automatically",
			BasePrice:   50,
			MaxLevel:    25,
			Multiplier:  3,
		},
	}
}
