package env

import (
	"fmt"
	"os"
	"time"

	"plink_backend/internal/config"
)

const (
	collectorIntervalName    = "COLLECTOR_INTERVAL"
	defaultCollectorInterval = time.Second
)

type collectorConfig struct {
	interval time.Duration
}

func NewCollectorConfig() (config.CollectorConfig, error) {
	interval := defaultCollectorInterval
	if raw := os.Getenv(collectorIntervalName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid collector interval: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("collector interval must be positive")
		}
		interval = parsed
	}

	return &collectorConfig{
		interval: interval,
	}, nil
}

func (cfg *collectorConfig) Interval() time.Duration {
	return cfg.interval
}
