package env

import (
	"os"
	"strconv"

	"plink_backend/internal/config"
)

const (
	redisAddrName     = "REDIS_ADDR"
	redisPasswordName = "REDIS_PASSWORD"
	redisDBName       = "REDIS_DB"
	widgetChannelName = "WIDGET_CHANNEL"

	defaultWidgetChannel = "plink.widget.coins"
)

type redisConfig struct {
	addr          string
	password      string
	db            int
	widgetChannel string
}

// NewRedisConfig never fails: an empty REDIS_ADDR simply disables the widget
// notifier.
func NewRedisConfig() (config.RedisConfig, error) {
	db := 0
	if raw := os.Getenv(redisDBName); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		db = parsed
	}

	channel := os.Getenv(widgetChannelName)
	if len(channel) == 0 {
		channel = defaultWidgetChannel
	}

	return &redisConfig{
		addr:          os.Getenv(redisAddrName),
		password:      os.Getenv(redisPasswordName),
		db:            db,
		widgetChannel: channel,
	}, nil
}

func (cfg *redisConfig) Enabled() bool {
	return len(cfg.addr) > 0
}

func (cfg *redisConfig) Addr() string {
	return cfg.addr
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}

func (cfg *redisConfig) WidgetChannel() string {
	return cfg.widgetChannel
}
