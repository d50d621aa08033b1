package game

import (
	"context"
	"fmt"

	"plink_backend/internal/model"
	"plink_backend/internal/repository"
	"plink_backend/internal/service"
)

// PurchaseUpgrade spends the current price and raises the upgrade level in a
// single transaction. Affordability and the level cap are re-checked against
// the locked in-transaction state, never a caller-supplied snapshot, so a
// concurrent spend cannot let an unaffordable purchase through.
func (s *serv) PurchaseUpgrade(ctx context.Context, id model.UpgradeID) (*model.PurchaseResult, error) {
	u, ok := s.catalog.ByID(id)
	if !ok {
		return nil, fmt.Errorf("purchase upgrade: unknown upgrade %q", id)
	}

	res := &model.PurchaseResult{UpgradeID: id}

	var committed bool
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		kv, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}

		levelKey := repository.UpgradeLevelKey(id)
		level := int(kv[levelKey])

		if !u.IsPurchasable(level) {
			res.Outcome = model.PurchaseMaxLevel
			res.State = s.deriveState(kv)
			return nil
		}

		price := u.Price(level)
		if kv[repository.KeyCoins] < price {
			res.Outcome = model.PurchaseUnaffordable
			res.State = s.deriveState(kv)
			return nil
		}

		kv[repository.KeyCoins] -= price
		if err := s.repo.Set(txCtx, repository.KeyCoins, kv[repository.KeyCoins]); err != nil {
			return err
		}

		kv[levelKey] = int64(level + 1)
		if err := s.repo.Set(txCtx, levelKey, int64(level+1)); err != nil {
			return err
		}

		if id == model.UpgradeTap {
			cpt := int64(1)
			if v, ok := kv[repository.KeyCoinsPerTap]; ok {
				cpt = v
			}
			cpt++
			kv[repository.KeyCoinsPerTap] = cpt
			if err := s.repo.Set(txCtx, repository.KeyCoinsPerTap, cpt); err != nil {
				return err
			}
		}

		res.Outcome = model.PurchaseCompleted
		res.PricePaid = price
		res.State = s.deriveState(kv)
		committed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("purchase upgrade: %w: %w", service.ErrStorage, err)
	}

	if committed {
		s.metrics.CoinsSpentTotal.Add(float64(res.PricePaid))
		s.metrics.PurchasesTotal.WithLabelValues(string(id)).Inc()
		s.publish(res.State)
	}

	return res, nil
}
