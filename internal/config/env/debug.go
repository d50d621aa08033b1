package env

import (
	"fmt"
	"os"
	"time"

	"plink_backend/internal/config"
)

const (
	debugPinHashName           = "DEBUG_PIN_HASH"
	accessTokenKeyEnvName      = "ACCESS_TOKEN"
	accessTokenDurationEnvName = "ACCESS_TOKEN_DURATION"
	defaultAccessTokenDuration = 15 * time.Minute
)

type debugAuthConfig struct {
	pinHash              string
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

// NewDebugAuthConfig requires both the bcrypt PIN hash and the token secret;
// without them the debug routes are not mounted at all.
func NewDebugAuthConfig() (config.DebugAuthConfig, error) {
	pinHash := os.Getenv(debugPinHashName)
	if len(pinHash) == 0 {
		return nil, fmt.Errorf("debug pin hash not found")
	}

	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}

	accessTokenDuration := defaultAccessTokenDuration
	if raw := os.Getenv(accessTokenDurationEnvName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid access token duration: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("access token duration must be positive")
		}
		accessTokenDuration = parsed
	}

	return &debugAuthConfig{
		pinHash:              pinHash,
		accessTokenSecretKey: accessToken,
		accessTokenDuration:  accessTokenDuration,
	}, nil
}

func (cfg *debugAuthConfig) PinHash() []byte {
	return []byte(cfg.pinHash)
}

func (cfg *debugAuthConfig) AccessTokenSecretKey() []byte {
	return []byte(cfg.accessTokenSecretKey)
}

func (cfg *debugAuthConfig) AccessTokenDuration() time.Duration {
	return cfg.accessTokenDuration
}
