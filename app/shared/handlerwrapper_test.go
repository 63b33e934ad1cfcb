package shared

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type testPayload struct {
	Name string `json:"name"`
}

type testResult struct {
	Echo string `json:"echo"`
}

func TestWrapTransformingTyped(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	tracer := noop.NewTracerProvider().Tracer("test")

	t.Run("produces messages with topic metadata and correlation id", func(t *testing.T) {
		fn := WrapTransformingTyped(
			"test.handler", logger, tracer, nil,
			func(ctx context.Context, p *testPayload) ([]HandlerResult, error) {
				return []HandlerResult{
					{Topic: "out.topic.v1", Payload: &testResult{Echo: p.Name}},
				}, nil
			},
		)

		in := message.NewMessage("msg-1", []byte(`{"name":"gopher"}`))
		middleware.SetCorrelationID("corr-1", in)

		out, err := fn(in)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "out.topic.v1", out[0].Metadata.Get(TopicMetadataKey))
		assert.Equal(t, "corr-1", middleware.MessageCorrelationID(out[0]))
		assert.JSONEq(t, `{"echo":"gopher"}`, string(out[0].Payload))
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		fn := WrapTransformingTyped(
			"test.handler", logger, tracer, nil,
			func(ctx context.Context, p *testPayload) ([]HandlerResult, error) {
				t.Fatal("handler must not be called")
				return nil, nil
			},
		)

		out, err := fn(message.NewMessage("msg-2", []byte(`{not json`)))
		require.Error(t, err)
		assert.Nil(t, out)
	})

	t.Run("handler error is propagated", func(t *testing.T) {
		wantErr := errors.New("boom")
		fn := WrapTransformingTyped(
			"test.handler", logger, tracer, nil,
			func(ctx context.Context, p *testPayload) ([]HandlerResult, error) {
				return nil, wantErr
			},
		)

		out, err := fn(message.NewMessage("msg-3", []byte(`{"name":"x"}`)))
		require.ErrorIs(t, err, wantErr)
		assert.Nil(t, out)
	})

	t.Run("no results means no messages", func(t *testing.T) {
		fn := WrapTransformingTyped(
			"test.handler", logger, tracer, nil,
			func(ctx context.Context, p *testPayload) ([]HandlerResult, error) {
				return nil, nil
			},
		)

		out, err := fn(message.NewMessage("msg-4", []byte(`{"name":"x"}`)))
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestOperationResult_MapToHandlerResults(t *testing.T) {
	success := SuccessResult(&testResult{Echo: "ok"})
	failure := FailureResult(&testResult{Echo: "nope"})

	got := success.MapToHandlerResults("s.topic", "f.topic")
	require.Len(t, got, 1)
	assert.Equal(t, "s.topic", got[0].Topic)

	got = failure.MapToHandlerResults("s.topic", "f.topic")
	require.Len(t, got, 1)
	assert.Equal(t, "f.topic", got[0].Topic)

	assert.Empty(t, OperationResult{}.MapToHandlerResults("s", "f"))
}
