package errwatchrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"

	errwatchservice "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/application"
	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	errwatchhandlers "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/infrastructure/handlers"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
	"github.com/Cedar-Hollow-Club/errwatch-bot/config"
)

// ErrwatchRouter handles routing for error watcher events.
type ErrwatchRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber shared.EventBus
	publisher  shared.EventBus
	config     *config.Config
	tracer     trace.Tracer
}

// NewErrwatchRouter creates a new ErrwatchRouter.
func NewErrwatchRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber shared.EventBus,
	publisher shared.EventBus,
	config *config.Config,
	tracer trace.Tracer,
) *ErrwatchRouter {
	return &ErrwatchRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		config:     config,
		tracer:     tracer,
	}
}

// Configure sets up the router with the necessary handlers and dependencies.
func (r *ErrwatchRouter) Configure(routerCtx context.Context, service errwatchservice.Service) error {
	handlers := errwatchhandlers.NewErrwatchHandlers(service, r.logger)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		shared.CommonMetadataMiddleware("errwatch"),
		middleware.Recoverer,
	)

	if err := r.RegisterHandlers(routerCtx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

type handlerDeps struct {
	router     *message.Router
	subscriber shared.EventBus
	publisher  shared.EventBus
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    shared.ReturningMetrics
}

// registerHandler registers a pure transformation-pattern handler with typed payload.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]shared.HandlerResult, error),
) {
	handlerName := "errwatch." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"", // Watermill reads topic from message metadata when empty
		deps.publisher,
		shared.WrapTransformingTyped(
			handlerName,
			deps.logger,
			deps.tracer,
			deps.metrics,
			handler,
		),
	)
}

// RegisterHandlers registers event handlers using the pure transformation pattern.
func (r *ErrwatchRouter) RegisterHandlers(ctx context.Context, handlers errwatchhandlers.Handlers) error {
	var metrics shared.ReturningMetrics // nil disables handler-level metrics

	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    metrics,
	}

	registerHandler(deps, errwatchevents.CommandErroredV1, handlers.HandleCommandErrored)

	registerHandler(deps, errwatchevents.WatcherToggleRequestedV1, handlers.HandleWatcherToggle)
	registerHandler(deps, errwatchevents.ThresholdSetRequestedV1, handlers.HandleThresholdSet)
	registerHandler(deps, errwatchevents.ClearUsageSetRequestedV1, handlers.HandleClearUsageSet)

	registerHandler(deps, errwatchevents.IgnoreAddRequestedV1, handlers.HandleIgnoreAdd)
	registerHandler(deps, errwatchevents.IgnoreRemoveRequestedV1, handlers.HandleIgnoreRemove)
	registerHandler(deps, errwatchevents.IgnoreListRequestedV1, handlers.HandleIgnoreList)

	registerHandler(deps, errwatchevents.WhitelistAddRequestedV1, handlers.HandleWhitelistAdd)
	registerHandler(deps, errwatchevents.WhitelistRemoveRequestedV1, handlers.HandleWhitelistRemove)
	registerHandler(deps, errwatchevents.WhitelistListRequestedV1, handlers.HandleWhitelistList)

	registerHandler(deps, errwatchevents.WarnMessageSetRequestedV1, handlers.HandleWarnMessageSet)
	registerHandler(deps, errwatchevents.WarnMessageToggleRequestedV1, handlers.HandleWarnMessageToggle)

	registerHandler(deps, errwatchevents.SettingsRetrievalRequestedV1, handlers.HandleSettingsRetrieval)
	registerHandler(deps, errwatchevents.UsageClearRequestedV1, handlers.HandleUsageClear)

	return nil
}

// Close stops the router.
func (r *ErrwatchRouter) Close() error {
	return r.Router.Close()
}
