package env

import (
	"fmt"
	"os"

	"plink_backend/internal/config"
	"plink_backend/internal/model"

	"gopkg.in/yaml.v3"
)

type yamlUpgrade struct {
	ID              string `yaml:"id"`
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	BasePrice       int64  `yaml:"base_price"`
	MaxLevel        int    `yaml:"max_level"`
	PriceMultiplier int64  `yaml:"price_multiplier"`
}

type yamlGameConfig struct {
	Upgrades []yamlUpgrade `yaml:"upgrades"`
}

type gameConfig struct {
	catalog model.Catalog
}

// NewGameConfigFromYAML loads the upgrade catalog. A missing file falls back
// to the built-in defaults; a present file must describe the full closed set
// of known upgrade ids.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &gameConfig{catalog: model.DefaultCatalog()}, nil
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var parsed yamlGameConfig
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if len(parsed.Upgrades) == 0 {
		return &gameConfig{catalog: model.DefaultCatalog()}, nil
	}

	defaults := model.DefaultCatalog()
	catalog := make(model.Catalog, 0, len(parsed.Upgrades))
	for _, u := range parsed.Upgrades {
		id := model.UpgradeID(u.ID)
		if _, known := defaults.ByID(id); !known {
			return nil, fmt.Errorf("unknown upgrade id %q in game config", u.ID)
		}
		if u.BasePrice <= 0 || u.MaxLevel <= 0 || u.PriceMultiplier <= 0 {
			return nil, fmt.Errorf("upgrade %q: base_price, max_level and price_multiplier must be positive", u.ID)
		}
		catalog = append(catalog, model.Upgrade{
			ID:          id,
			Title:       u.Title,
			Description: u.Description,
			BasePrice:   u.BasePrice,
			MaxLevel:    u.MaxLevel,
			Multiplier:  u.PriceMultiplier,
		})
	}

	// keep any upgrade the file omitted on its defaults
	for _, d := range defaults {
		if _, ok := catalog.ByID(d.ID); !ok {
			catalog = append(catalog, d)
		}
	}

	return &gameConfig{catalog: catalog}, nil
}

func (cfg *gameConfig) Catalog() model.Catalog {
	return cfg.catalog
}
