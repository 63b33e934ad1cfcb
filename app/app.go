package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Cedar-Hollow-Club/errwatch-bot/app/eventbus"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch"
	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
	"github.com/Cedar-Hollow-Club/errwatch-bot/config"
	"github.com/Cedar-Hollow-Club/errwatch-bot/db/bundb"
	"github.com/Cedar-Hollow-Club/errwatch-bot/internal/observability"
)

// App wires configuration, storage, the event bus and the errwatch module.
type App struct {
	Cfg             *config.Config
	Observability   *observability.Observability
	DB              *bundb.DBService
	EventBus        shared.EventBus
	WatermillRouter *message.Router
	ErrwatchModule  *errwatch.Module

	routerCancel context.CancelFunc
	wg           sync.WaitGroup
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config, obs *observability.Observability) (*App, error) {
	logger := obs.Logger

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	if err := bus.CreateStream(ctx, errwatchevents.StreamName, errwatchevents.StreamSubjects); err != nil {
		return nil, fmt.Errorf("failed to create %s stream: %w", errwatchevents.StreamName, err)
	}

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	routerCtx, routerCancel := context.WithCancel(ctx)

	module, err := errwatch.NewErrwatchModule(ctx, cfg, obs, dbService.ErrwatchDB, bus, router, routerCtx)
	if err != nil {
		routerCancel()
		return nil, fmt.Errorf("failed to initialize errwatch module: %w", err)
	}

	return &App{
		Cfg:             cfg,
		Observability:   obs,
		DB:              dbService,
		EventBus:        bus,
		WatermillRouter: router,
		ErrwatchModule:  module,
		routerCancel:    routerCancel,
	}, nil
}

// Run starts the watermill router and the errwatch module. It blocks until
// the context is canceled or the router stops.
func (app *App) Run(ctx context.Context) error {
	logger := app.Observability.Logger

	app.wg.Add(1)
	go app.ErrwatchModule.Run(ctx, &app.wg)

	logger.InfoContext(ctx, "Starting watermill router")
	if err := app.WatermillRouter.Run(ctx); err != nil {
		return fmt.Errorf("watermill router stopped with error: %w", err)
	}
	return nil
}

// Close shuts the application down in reverse dependency order.
func (app *App) Close() error {
	logger := app.Observability.Logger
	logger.Info("Shutting down application")

	app.routerCancel()

	if err := app.ErrwatchModule.Close(); err != nil {
		logger.Error("Error closing errwatch module", "error", err)
	}

	app.wg.Wait()

	if err := app.EventBus.Close(); err != nil {
		logger.Error("Error closing event bus", "error", err)
	}

	if err := app.DB.Close(); err != nil {
		logger.Error("Error closing database connection", "error", err)
	}

	logger.Info("Application shut down gracefully")
	return nil
}
