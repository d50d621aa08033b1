package app

import (
	"context"

	debugAPI "plink_backend/internal/api/debug"
	gameAPI "plink_backend/internal/api/game"
	sessionAPI "plink_backend/internal/api/session"
	settingsAPI "plink_backend/internal/api/settings"
	"plink_backend/internal/config"
	"plink_backend/internal/config/env"
	"plink_backend/internal/middleware"
	"plink_backend/internal/monitoring"
	"plink_backend/internal/repository"
	"plink_backend/internal/repository/settings_repo"
	"plink_backend/internal/repository/state_repo"
	"plink_backend/internal/service"
	gameServ "plink_backend/internal/service/game"
	"plink_backend/internal/service/session"
	settingsServ "plink_backend/internal/service/settings"
	"plink_backend/internal/widget"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	lg *zap.SugaredLogger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Widget notification bits
	redisCfg    config.RedisConfig
	redisClient *redis.Client
	notifier    widget.Notifier

	// Metrics
	metrics *monitoring.Metrics

	// Game bits
	gameCfg      config.GameConfig
	stateRepo    repository.StateRepository
	gameService  service.GameService
	gameHand     *gameAPI.Handler
	collectorCfg config.CollectorConfig
	gameSession  *session.Session
	sessionHand  *sessionAPI.Handler

	// Settings bits
	settingsRepo    repository.SettingsRepository
	settingsService service.SettingsService
	settingsHand    *settingsAPI.Handler

	// Debug bits (nil when no debug auth is configured)
	debugAuthCfg config.DebugAuthConfig
	debugHand    *debugAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(lg *zap.SugaredLogger) *ServiceProvider {
	return &ServiceProvider{lg: lg}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) WidgetNotifier() widget.Notifier {
	if sp.notifier == nil {
		cfg := sp.RedisConfig()
		if !cfg.Enabled() {
			sp.lg.Infow("widget notifier disabled: no redis address configured")
			sp.notifier = widget.Nop{}
			return sp.notifier
		}

		sp.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		sp.notifier = widget.NewRedisNotifier(sp.redisClient, cfg.WidgetChannel(), sp.lg)
	}
	return sp.notifier
}

func (sp *ServiceProvider) Metrics() *monitoring.Metrics {
	if sp.metrics == nil {
		sp.metrics = monitoring.New()
	}
	return sp.metrics
}

func (sp *ServiceProvider) GameConfig() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) StateRepository(ctx context.Context) repository.StateRepository {
	if sp.stateRepo == nil {
		sp.stateRepo = state_repo.NewStateRepository(
			sp.DBClient(ctx),
			repository.DefaultValues(sp.GameConfig().Catalog()),
		)
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) SettingsRepository(ctx context.Context) repository.SettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = settings_repo.NewSettingsRepository(sp.DBClient(ctx))
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameService == nil {
		sp.gameService = gameServ.NewGameService(
			sp.StateRepository(ctx),
			sp.TXManager(ctx),
			sp.GameConfig().Catalog(),
			sp.WidgetNotifier(),
			sp.Metrics(),
			sp.lg,
		)
	}
	return sp.gameService
}

func (sp *ServiceProvider) SettingsService(ctx context.Context) service.SettingsService {
	if sp.settingsService == nil {
		sp.settingsService = settingsServ.NewSettingsService(
			sp.SettingsRepository(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.settingsService
}

func (sp *ServiceProvider) CollectorConfig() config.CollectorConfig {
	if sp.collectorCfg == nil {
		cfg, err := env.NewCollectorConfig()
		if err != nil {
			panic("failed to get collector config: " + err.Error())
		}
		sp.collectorCfg = cfg
	}
	return sp.collectorCfg
}

func (sp *ServiceProvider) GameSession(ctx context.Context) *session.Session {
	if sp.gameSession == nil {
		sp.gameSession = session.New(
			sp.GameService(ctx),
			sp.CollectorConfig().Interval(),
			sp.Metrics(),
			sp.lg,
		)
	}
	return sp.gameSession
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Session: sp.GameSession(ctx),
			Game:    sp.GameService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Session: sp.GameSession(ctx),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) SettingsHandler(ctx context.Context) *settingsAPI.Handler {
	if sp.settingsHand == nil {
		sp.settingsHand = settingsAPI.NewHandler(settingsAPI.HandlerDeps{
			Serv: sp.SettingsService(ctx),
		})
	}
	return sp.settingsHand
}

// DebugAuthConfig returns nil when the debug menu is not configured; the
// debug routes stay hidden then.
func (sp *ServiceProvider) DebugAuthConfig() config.DebugAuthConfig {
	if sp.debugAuthCfg == nil {
		cfg, err := env.NewDebugAuthConfig()
		if err != nil {
			sp.lg.Infow("debug routes disabled", "reason", err)
			return nil
		}
		sp.debugAuthCfg = cfg
	}
	return sp.debugAuthCfg
}

func (sp *ServiceProvider) DebugHandler(ctx context.Context) *debugAPI.Handler {
	if sp.debugHand == nil {
		sp.debugHand = debugAPI.NewHandler(debugAPI.HandlerDeps{
			Game:     sp.GameService(ctx),
			Settings: sp.SettingsService(ctx),
			AuthCfg:  sp.DebugAuthConfig(),
		})
	}
	return sp.debugHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Method("GET", "/metrics", sp.Metrics().Handler())

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Post("/tap", gameHandler.Tap)
			rr.Get("/state", gameHandler.State)
			rr.Get("/state/ws", gameHandler.StateStream)
			rr.Post("/gamble", gameHandler.Gamble)
			rr.Get("/shop", gameHandler.Shop)
			rr.Post("/shop/purchase", gameHandler.Purchase)
		})

		// Session lifecycle signals
		sessionHandler := sp.SessionHandler(ctx)
		r.Route("/session", func(rr chi.Router) {
			rr.Post("/foreground", sessionHandler.Foreground)
			rr.Post("/visible", sessionHandler.Visible)
		})

		// Settings endpoints
		settingsHandler := sp.SettingsHandler(ctx)
		r.Route("/settings", func(rr chi.Router) {
			rr.Get("/theme", settingsHandler.GetTheme)
			rr.Put("/theme", settingsHandler.SetTheme)
			rr.Post("/theme/toggle", settingsHandler.ToggleTheme)
			rr.Get("/debug-menu", settingsHandler.GetDebugMenu)
			rr.Put("/debug-menu", settingsHandler.SetDebugMenu)
			rr.Post("/debug-menu/toggle", settingsHandler.ToggleDebugMenu)
		})

		// Debug endpoints are mounted only when a PIN hash and token secret
		// are configured
		if authCfg := sp.DebugAuthConfig(); authCfg != nil {
			debugHandler := sp.DebugHandler(ctx)
			r.Route("/debug", func(rr chi.Router) {
				rr.Post("/unlock", debugHandler.Unlock)
				rr.Group(func(pr chi.Router) {
					pr.Use(middleware.DebugAuth(authCfg.AccessTokenSecretKey(), sp.SettingsService(ctx)))
					pr.Post("/add-coins", debugHandler.AddCoins)
					pr.Post("/set-coins", debugHandler.SetCoins)
					pr.Post("/max-upgrades", debugHandler.MaxUpgrades)
					pr.Post("/reset", debugHandler.Reset)
				})
			})
		}

		sp.router = r
	}

	return sp.router
}
