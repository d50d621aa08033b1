package game

import (
	"context"
	"fmt"

	"plink_backend/internal/model"
	"plink_backend/internal/repository"
	"plink_backend/internal/service"
)

// AddCoins credits a genuine earning event: both the balance and the
// total-earned counter move by amount.
func (s *serv) AddCoins(ctx context.Context, amount int64) error {
	var st model.GameState
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		kv[repository.KeyCoins] += amount
		kv[repository.KeyTotalCoinsEarned] += amount

		if err := s.repo.Set(txCtx, repository.KeyCoins, kv[repository.KeyCoins]); err != nil {
			return err
		}
		if err := s.repo.Set(txCtx, repository.KeyTotalCoinsEarned, kv[repository.KeyTotalCoinsEarned]); err != nil {
			return err
		}

		st = s.deriveState(kv)
		return nil
	})
	if err != nil {
		return fmt.Errorf("add coins: %w: %w", service.ErrStorage, err)
	}

	if amount > 0 {
		s.metrics.CoinsEarnedTotal.Add(float64(amount))
	}
	s.publish(st)
	return nil
}

// SpendCoins debits the balance, clamped at zero. The total-earned counter is
// untouched.
func (s *serv) SpendCoins(ctx context.Context, amount int64) error {
	var st model.GameState
	var spent int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		coins := kv[repository.KeyCoins] - amount
		if coins < 0 {
			coins = 0
		}
		spent = kv[repository.KeyCoins] - coins
		kv[repository.KeyCoins] = coins

		if err := s.repo.Set(txCtx, repository.KeyCoins, coins); err != nil {
			return err
		}

		st = s.deriveState(kv)
		return nil
	})
	if err != nil {
		return fmt.Errorf("spend coins: %w: %w", service.ErrStorage, err)
	}

	if spent > 0 {
		s.metrics.CoinsSpentTotal.Add(float64(spent))
	}
	s.publish(st)
	return nil
}

func (s *serv) UpdateCoinsPerTap(ctx context.Context, value int) error {
	var st model.GameState
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		kv[repository.KeyCoinsPerTap] = int64(value)
		if err := s.repo.Set(txCtx, repository.KeyCoinsPerTap, int64(value)); err != nil {
			return err
		}

		st = s.deriveState(kv)
		return nil
	})
	if err != nil {
		return fmt.Errorf("update coins per tap: %w: %w", service.ErrStorage, err)
	}

	s.publish(st)
	return nil
}

func (s *serv) UpdateUpgradeLevel(ctx context.Context, id model.UpgradeID, level int) error {
	if _, ok := s.catalog.ByID(id); !ok {
		return fmt.Errorf("update upgrade level: unknown upgrade %q", id)
	}

	var st model.GameState
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		key := repository.UpgradeLevelKey(id)
		kv[key] = int64(level)
		if err := s.repo.Set(txCtx, key, int64(level)); err != nil {
			return err
		}

		st = s.deriveState(kv)
		return nil
	})
	if err != nil {
		return fmt.Errorf("update upgrade level: %w: %w", service.ErrStorage, err)
	}

	s.publish(st)
	return nil
}

// DebugAddCoins credits the balance only. Excluded from the earned-total
// invariant on purpose.
func (s *serv) DebugAddCoins(ctx context.Context, amount int64) error {
	var st model.GameState
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		kv[repository.KeyCoins] += amount
		if err := s.repo.Set(txCtx, repository.KeyCoins, kv[repository.KeyCoins]); err != nil {
			return err
		}

		st = s.deriveState(kv)
		return nil
	})
	if err != nil {
		return fmt.Errorf("debug add coins: %w: %w", service.ErrStorage, err)
	}

	s.publish(st)
	return nil
}

func (s *serv) DebugSetCoins(ctx context.Context, amount int64) error {
	var st model.GameState
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		kv[repository.KeyCoins] = amount
		if err := s.repo.Set(txCtx, repository.KeyCoins, amount); err != nil {
			return err
		}

		st = s.deriveState(kv)
		return nil
	})
	if err != nil {
		return fmt.Errorf("debug set coins: %w: %w", service.ErrStorage, err)
	}

	s.publish(st)
	return nil
}

// DebugMaxUpgrades maxes every upgrade and the bankroll in one transaction.
func (s *serv) DebugMaxUpgrades(ctx context.Context) error {
	var st model.GameState
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		kv[repository.KeyCoins] = 999_999_999
		if err := s.repo.Set(txCtx, repository.KeyCoins, 999_999_999); err != nil {
			return err
		}

		for _, u := range s.catalog {
			key := repository.UpgradeLevelKey(u.ID)
			kv[key] = int64(u.MaxLevel)
			if err := s.repo.Set(txCtx, key, int64(u.MaxLevel)); err != nil {
				return err
			}
			if u.ID == model.UpgradeTap {
				// tap rate follows the tap upgrade: base 1 + one per level
				cpt := int64(u.MaxLevel + 1)
				kv[repository.KeyCoinsPerTap] = cpt
				if err := s.repo.Set(txCtx, repository.KeyCoinsPerTap, cpt); err != nil {
					return err
				}
			}
		}

		st = s.deriveState(kv)
		return nil
	})
	if err != nil {
		return fmt.Errorf("debug max upgrades: %w: %w", service.ErrStorage, err)
	}

	s.publish(st)
	return nil
}

// DebugResetGame clears every persisted key; a fresh read yields defaults.
func (s *serv) DebugResetGame(ctx context.Context) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Clear(txCtx)
	})
	if err != nil {
		return fmt.Errorf("debug reset game: %w: %w", service.ErrStorage, err)
	}

	s.publish(s.deriveState(map[string]int64{}))
	return nil
}
