package config

import (
	"time"

	"plink_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// RedisConfig describes the widget-notification endpoint. Enabled is false
// when no address is configured; the notifier is a no-op then.
type RedisConfig interface {
	Enabled() bool
	Addr() string
	Password() string
	DB() int
	WidgetChannel() string
}

// DebugAuthConfig gates the hidden debug menu: a bcrypt-hashed PIN unlocks
// it, successful unlocks get a short-lived access token.
type DebugAuthConfig interface {
	PinHash() []byte
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type CollectorConfig interface {
	Interval() time.Duration
}

// GameConfig carries the upgrade catalog loaded from config.yaml.
type GameConfig interface {
	Catalog() model.Catalog
}
