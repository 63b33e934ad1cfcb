package errwatchhandlers

import (
	"log/slog"

	errwatchservice "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/application"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// ErrwatchHandlers implements the Handlers interface for error watcher events.
type ErrwatchHandlers struct {
	service errwatchservice.Service
	logger  *slog.Logger
}

// NewErrwatchHandlers creates a new ErrwatchHandlers instance.
func NewErrwatchHandlers(service errwatchservice.Service, logger *slog.Logger) *ErrwatchHandlers {
	return &ErrwatchHandlers{
		service: service,
		logger:  logger,
	}
}

// mapOperationResult converts a service OperationResult to handler results
// destined for the success or failure topic.
func mapOperationResult(
	result shared.OperationResult,
	successTopic, failureTopic string,
) []shared.HandlerResult {
	return result.MapToHandlerResults(successTopic, failureTopic)
}
