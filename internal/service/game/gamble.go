package game

import (
	"context"
	"fmt"

	"plink_backend/internal/model"
	"plink_backend/internal/repository"
	"plink_backend/internal/service"

	"github.com/google/uuid"
)

// Gamble risks the wager on an independent fair coin flip inside one
// transaction. A non-positive or unaffordable wager is Rejected without any
// state change; how to present a rejection is the caller's call.
func (s *serv) Gamble(ctx context.Context, wager int64) (*model.GambleResult, error) {
	res := &model.GambleResult{
		RoundID: uuid.New(),
		Outcome: model.GambleRejected,
		Wager:   wager,
	}

	if wager <= 0 {
		res.Balance = s.cachedCoins()
		s.metrics.GamblesTotal.WithLabelValues(string(res.Outcome)).Inc()
		s.lg.Infow("gamble round",
			"round_id", res.RoundID,
			"outcome", res.Outcome,
			"wager", wager,
			"balance", res.Balance,
		)
		return res, nil
	}

	var st model.GameState
	var committed bool
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		coins := kv[repository.KeyCoins]
		if wager > coins {
			st = s.deriveState(kv)
			return nil
		}

		if s.flip() {
			res.Outcome = model.GambleWon
			kv[repository.KeyCoins] = coins + wager
			kv[repository.KeyTotalCoinsEarned] += wager
			if err := s.repo.Set(txCtx, repository.KeyTotalCoinsEarned, kv[repository.KeyTotalCoinsEarned]); err != nil {
				return err
			}
		} else {
			res.Outcome = model.GambleLost
			coins -= wager
			if coins < 0 {
				coins = 0
			}
			kv[repository.KeyCoins] = coins
		}

		if err := s.repo.Set(txCtx, repository.KeyCoins, kv[repository.KeyCoins]); err != nil {
			return err
		}

		st = s.deriveState(kv)
		committed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gamble: %w: %w", service.ErrStorage, err)
	}

	res.Balance = st.Coins

	if committed {
		if res.Outcome == model.GambleWon {
			s.metrics.CoinsEarnedTotal.Add(float64(wager))
		} else {
			s.metrics.CoinsSpentTotal.Add(float64(wager))
		}
		s.publish(st)
	}
	s.metrics.GamblesTotal.WithLabelValues(string(res.Outcome)).Inc()

	s.lg.Infow("gamble round",
		"round_id", res.RoundID,
		"outcome", res.Outcome,
		"wager", wager,
		"balance", res.Balance,
	)

	return res, nil
}
