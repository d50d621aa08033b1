package game

import (
	"math/rand"
	"sync"

	"plink_backend/internal/model"
	"plink_backend/internal/monitoring"
	"plink_backend/internal/repository"
	"plink_backend/internal/service"
	"plink_backend/internal/widget"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	repo      repository.StateRepository
	txManager trm.Manager
	catalog   model.Catalog
	notifier  widget.Notifier
	metrics   *monitoring.Metrics
	lg        *zap.SugaredLogger

	// flip is the fair coin used by Gamble; swapped out in tests.
	flip func() bool

	mu       sync.Mutex
	latest   model.GameState
	loaded   bool
	watchers map[int]chan model.GameState
	nextID   int
}

func NewGameService(
	repo repository.StateRepository,
	txManager trm.Manager,
	catalog model.Catalog,
	notifier widget.Notifier,
	metrics *monitoring.Metrics,
	lg *zap.SugaredLogger,
) service.GameService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		catalog:   catalog,
		notifier:  notifier,
		metrics:   metrics,
		lg:        lg,
		flip:      func() bool { return rand.Intn(2) == 0 },
		watchers:  make(map[int]chan model.GameState),
	}
}
