package observability

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Cedar-Hollow-Club/errwatch-bot/config"
)

const serviceName = "errwatch-bot"

// Observability bundles the logger, tracer and metrics plumbing handed to
// modules at startup.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Registry *prometheus.Registry
	Metrics  ErrwatchMetrics

	metricsServer  *http.Server
	tracerProvider *sdktrace.TracerProvider
}

// Init builds the observability stack: a JSON slog logger, a prometheus
// registry with an HTTP /metrics and /healthz endpoint, and an OTLP tracer
// when an endpoint is configured (noop otherwise).
func Init(ctx context.Context, cfg config.ObservabilityConfig) (*Observability, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("service", serviceName))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	obs := &Observability{
		Logger:   logger,
		Registry: registry,
		Metrics:  NewPrometheusMetrics(registry),
	}

	tracer, tp, err := initTracer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}
	obs.Tracer = tracer
	obs.tracerProvider = tp

	obs.metricsServer = startMetricsServer(cfg.MetricsAddress, registry, logger)

	return obs, nil
}

func initTracer(ctx context.Context, cfg config.ObservabilityConfig) (trace.Tracer, *sdktrace.TracerProvider, error) {
	if cfg.OTLPEndpoint == "" {
		return noop.NewTracerProvider().Tracer(serviceName), nil, nil
	}

	var (
		exporter *otlptrace.Exporter
		err      error
	)
	switch cfg.OTLPTransport {
	case "http":
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exporter, err = otlptracehttp.New(ctx, opts...)
	default:
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		exporter, err = otlptracegrpc.New(ctx, opts...)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.DeploymentEnvironment(cfg.Environment),
	))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TraceSampleRate))),
	)
	otel.SetTracerProvider(tp)

	return tp.Tracer(serviceName), tp, nil
}

func startMetricsServer(addr string, registry *prometheus.Registry, logger *slog.Logger) *http.Server {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Metrics server listening", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server failed", slog.Any("error", err))
		}
	}()

	return srv
}

// Shutdown flushes the tracer and stops the metrics server.
func (o *Observability) Shutdown(ctx context.Context) error {
	var firstErr error
	if o.metricsServer != nil {
		if err := o.metricsServer.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("metrics server shutdown: %w", err)
		}
	}
	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("tracer provider shutdown: %w", err)
		}
	}
	return firstErr
}
