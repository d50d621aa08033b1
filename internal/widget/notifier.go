package widget

import (
	"context"
	"encoding/json"
	"time"

	"plink_backend/internal/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// Notifier mirrors the coin balance to the home-screen widget. Calls are
// best-effort and fire-and-forget: widget staleness is not a correctness
// issue, so failures are logged and swallowed.
type Notifier interface {
	NotifyCoinsChanged(state model.GameState)
}

type coinsPayload struct {
	Coins            int64 `json:"coins"`
	TotalCoinsEarned int64 `json:"total_coins_earned"`
}

type redisNotifier struct {
	client  *redis.Client
	channel string
	lg      *zap.SugaredLogger
}

// NewRedisNotifier publishes balance updates to a Redis channel the widget
// process subscribes to.
func NewRedisNotifier(client *redis.Client, channel string, lg *zap.SugaredLogger) Notifier {
	return &redisNotifier{
		client:  client,
		channel: channel,
		lg:      lg,
	}
}

func (n *redisNotifier) NotifyCoinsChanged(state model.GameState) {
	payload, err := json.Marshal(coinsPayload{
		Coins:            state.Coins,
		TotalCoinsEarned: state.TotalCoinsEarned,
	})
	if err != nil {
		n.lg.Warnw("widget payload marshal failed", "err", err)
		return
	}

	// Detached from the caller's context: the mutation already committed and
	// must not wait on (or fail with) the notification.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
			n.lg.Debugw("widget refresh publish failed", "channel", n.channel, "err", err)
		}
	}()
}

// Nop is used when no Redis endpoint is configured.
type Nop struct{}

func (Nop) NotifyCoinsChanged(model.GameState) {}
