package app

import (
	"context"
	"net/http"
	"os"

	"plink_backend/internal/config"

	"go.uber.org/zap"
)

type App struct {
	ServiceProvider *ServiceProvider

	lg *zap.SugaredLogger
}

func NewApp() *App {
	var logger *zap.Logger
	var err error
	if os.Getenv("LOG_DEV") == "1" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}

	return &App{lg: logger.Sugar()}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider(a.lg)
}

func (a *App) Run() error {
	defer func() { _ = a.lg.Sync() }()

	err := config.Load(".env")
	if err != nil {
		a.lg.Infow("no .env file loaded", "err", err)
	}
	a.initServiceProvider()

	ctx := context.Background()

	// schema is created up front so the first transaction finds its tables
	if err := a.ServiceProvider.StateRepository(ctx).Init(ctx); err != nil {
		return err
	}
	if err := a.ServiceProvider.SettingsRepository(ctx).Init(ctx); err != nil {
		return err
	}

	r := a.ServiceProvider.Router(ctx)

	// the session loop owns the auto-collector for the whole process lifetime
	sess := a.ServiceProvider.GameSession(ctx)
	go func() {
		if err := sess.Run(ctx); err != nil && err != context.Canceled {
			a.lg.Errorw("session loop exited", "err", err)
		}
	}()

	a.lg.Infow("starting server", "addr", a.ServiceProvider.HTTPCfg().Address())
	err = http.ListenAndServe(a.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}
