package settings

import (
	"context"
	"fmt"

	"plink_backend/internal/model"
	"plink_backend/internal/repository"
	"plink_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.SettingsRepository
	txManager trm.Manager
}

func NewSettingsService(repo repository.SettingsRepository, txManager trm.Manager) service.SettingsService {
	return &serv{
		repo:      repo,
		txManager: txManager,
	}
}

func (s *serv) ThemeMode(ctx context.Context) (model.ThemeMode, error) {
	mode, err := s.repo.ThemeMode(ctx)
	if err != nil {
		return model.ThemeSystem, fmt.Errorf("theme mode: %w: %w", service.ErrStorage, err)
	}
	return mode, nil
}

func (s *serv) SetThemeMode(ctx context.Context, mode model.ThemeMode) error {
	if err := s.repo.SetThemeMode(ctx, mode); err != nil {
		return fmt.Errorf("set theme mode: %w: %w", service.ErrStorage, err)
	}
	return nil
}

// ToggleTheme flips LIGHT and DARK; SYSTEM switches to DARK. The read and the
// write share one transaction so concurrent toggles cannot lose a step.
func (s *serv) ToggleTheme(ctx context.Context) (model.ThemeMode, error) {
	var next model.ThemeMode
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.repo.ThemeMode(txCtx)
		if err != nil {
			return err
		}
		next = current.Next()
		return s.repo.SetThemeMode(txCtx, next)
	})
	if err != nil {
		return model.ThemeSystem, fmt.Errorf("toggle theme: %w: %w", service.ErrStorage, err)
	}
	return next, nil
}

func (s *serv) DebugMenuEnabled(ctx context.Context) (bool, error) {
	enabled, err := s.repo.DebugMenuEnabled(ctx)
	if err != nil {
		return false, fmt.Errorf("debug menu enabled: %w: %w", service.ErrStorage, err)
	}
	return enabled, nil
}

func (s *serv) SetDebugMenuEnabled(ctx context.Context, enabled bool) error {
	if err := s.repo.SetDebugMenuEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("set debug menu enabled: %w: %w", service.ErrStorage, err)
	}
	return nil
}

func (s *serv) ToggleDebugMenu(ctx context.Context) (bool, error) {
	var next bool
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.repo.DebugMenuEnabled(txCtx)
		if err != nil {
			return err
		}
		next = !current
		return s.repo.SetDebugMenuEnabled(txCtx, next)
	})
	if err != nil {
		return false, fmt.Errorf("toggle debug menu: %w: %w", service.ErrStorage, err)
	}
	return next, nil
}
