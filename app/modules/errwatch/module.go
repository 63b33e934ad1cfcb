package errwatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	errwatchservice "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/application"
	errwatchqueue "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/infrastructure/queue"
	errwatchdb "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/infrastructure/repositories"
	errwatchrouter "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/infrastructure/router"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
	"github.com/Cedar-Hollow-Club/errwatch-bot/config"
	"github.com/Cedar-Hollow-Club/errwatch-bot/internal/observability"
)

// Module represents the errwatch module.
type Module struct {
	EventBus        shared.EventBus
	ErrwatchService errwatchservice.Service
	ErrwatchRouter  *errwatchrouter.ErrwatchRouter
	QueueService    errwatchqueue.QueueService
	config          *config.Config
	observability   *observability.Observability
	cancelFunc      context.CancelFunc
}

// NewErrwatchModule creates a new instance of the errwatch module.
func NewErrwatchModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo errwatchdb.Repository,
	eventBus shared.EventBus,
	router *message.Router,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Logger
	metrics := obs.Metrics
	tracer := obs.Tracer

	logger.InfoContext(ctx, "errwatch.NewErrwatchModule called")

	service := errwatchservice.NewErrwatchService(repo, logger, metrics, tracer)
	if err := service.WarmCache(ctx); err != nil {
		return nil, fmt.Errorf("failed to warm error counter cache: %w", err)
	}

	errwatchRouter := errwatchrouter.NewErrwatchRouter(logger, router, eventBus, eventBus, cfg, tracer)
	if err := errwatchRouter.Configure(routerCtx, service); err != nil {
		return nil, fmt.Errorf("failed to configure errwatch router: %w", err)
	}

	queueService, err := errwatchqueue.NewService(ctx, logger, cfg.Postgres.DSN, eventBus)
	if err != nil {
		return nil, fmt.Errorf("failed to create errwatch queue service: %w", err)
	}

	module := &Module{
		EventBus:        eventBus,
		ErrwatchService: service,
		ErrwatchRouter:  errwatchRouter,
		QueueService:    queueService,
		config:          cfg,
		observability:   obs,
	}

	return module, nil
}

// Run starts the errwatch module.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting errwatch module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.QueueService.Start(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to start errwatch queue service", "error", err)
		return
	}

	// Keep this goroutine alive until the context is canceled
	<-ctx.Done()
	logger.InfoContext(ctx, "Errwatch module goroutine stopped")
}

// Close stops the errwatch module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Logger
	logger.Info("Stopping errwatch module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	if m.QueueService != nil {
		if err := m.QueueService.Stop(context.Background()); err != nil {
			logger.Error("Error stopping errwatch queue service", "error", err)
		}
	}

	if m.ErrwatchRouter != nil {
		if err := m.ErrwatchRouter.Close(); err != nil {
			logger.Error("Error closing ErrwatchRouter from module", "error", err)
			return fmt.Errorf("error closing ErrwatchRouter: %w", err)
		}
	}

	logger.Info("Errwatch module stopped")
	return nil
}
