package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TopicMetadataKey is the message metadata key the eventbus reads the publish
// subject from when a handler is registered with an empty publish topic.
const TopicMetadataKey = "topic"

// HandlerResult is a single message a transforming handler wants published.
type HandlerResult struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// ReturningMetrics records handler-level outcomes. A nil value disables
// recording, which tests rely on.
type ReturningMetrics interface {
	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)
}

// WrapTransformingTyped adapts a typed transforming handler into a watermill
// HandlerFunc. It unmarshals the incoming payload into T, invokes the handler
// inside a span, and marshals every returned HandlerResult into an outgoing
// message whose subject is carried in the "topic" metadata. The correlation ID
// of the incoming message is propagated to every produced message.
func WrapTransformingTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics ReturningMetrics,
	handler func(ctx context.Context, payload *T) ([]HandlerResult, error),
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), handlerName, trace.WithAttributes(
			attribute.String("handler", handlerName),
			attribute.String("message_id", msg.UUID),
		))
		defer span.End()

		if metrics != nil {
			metrics.RecordHandlerAttempt(ctx, handlerName)
		}
		start := time.Now()
		defer func() {
			if metrics != nil {
				metrics.RecordHandlerDuration(ctx, handlerName, time.Since(start))
			}
		}()

		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			span.RecordError(err)
			if metrics != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
			}
			logger.ErrorContext(ctx, "Failed to unmarshal payload",
				slog.String("handler", handlerName),
				slog.String("message_id", msg.UUID),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("%s: unmarshal payload: %w", handlerName, err)
		}

		results, err := handler(ctx, &payload)
		if err != nil {
			span.RecordError(err)
			if metrics != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
			}
			logger.ErrorContext(ctx, "Handler returned error",
				slog.String("handler", handlerName),
				slog.String("message_id", msg.UUID),
				slog.Any("error", err),
			)
			return nil, err
		}

		out := make([]*message.Message, 0, len(results))
		for _, res := range results {
			raw, err := json.Marshal(res.Payload)
			if err != nil {
				span.RecordError(err)
				if metrics != nil {
					metrics.RecordHandlerFailure(ctx, handlerName)
				}
				return nil, fmt.Errorf("%s: marshal result for %s: %w", handlerName, res.Topic, err)
			}

			produced := message.NewMessage(uuid.New().String(), raw)
			produced.SetContext(ctx)
			produced.Metadata.Set(TopicMetadataKey, res.Topic)
			if correlationID := middleware.MessageCorrelationID(msg); correlationID != "" {
				middleware.SetCorrelationID(correlationID, produced)
			}
			for k, v := range res.Metadata {
				produced.Metadata.Set(k, v)
			}
			out = append(out, produced)
		}

		if metrics != nil {
			metrics.RecordHandlerSuccess(ctx, handlerName)
		}
		return out, nil
	}
}
