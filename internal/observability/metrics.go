package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrwatchMetrics records outcomes for errwatch service operations.
type ErrwatchMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordCommandError(ctx context.Context, commandName string)
	RecordUserBlacklisted(ctx context.Context)
}

// PrometheusMetrics implements ErrwatchMetrics on a prometheus registry.
type PrometheusMetrics struct {
	operationAttempts  *prometheus.CounterVec
	operationSuccesses *prometheus.CounterVec
	operationFailures  *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
	commandErrors      *prometheus.CounterVec
	usersBlacklisted   prometheus.Counter
}

// NewPrometheusMetrics registers the errwatch collectors on the registry.
func NewPrometheusMetrics(registry *prometheus.Registry) *PrometheusMetrics {
	m := &PrometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "errwatch_operation_attempts_total",
			Help: "Number of attempted errwatch service operations.",
		}, []string{"operation"}),
		operationSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "errwatch_operation_successes_total",
			Help: "Number of successful errwatch service operations.",
		}, []string{"operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "errwatch_operation_failures_total",
			Help: "Number of failed errwatch service operations.",
		}, []string{"operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "errwatch_operation_duration_seconds",
			Help:    "Duration of errwatch service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		commandErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "errwatch_command_errors_total",
			Help: "Number of counted command invocation errors, by command.",
		}, []string{"command"}),
		usersBlacklisted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "errwatch_users_blacklisted_total",
			Help: "Number of users auto-blacklisted by the error watcher.",
		}),
	}

	registry.MustRegister(
		m.operationAttempts,
		m.operationSuccesses,
		m.operationFailures,
		m.operationDuration,
		m.commandErrors,
		m.usersBlacklisted,
	)

	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.operationAttempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.operationSuccesses.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.operationFailures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordCommandError(_ context.Context, commandName string) {
	m.commandErrors.WithLabelValues(commandName).Inc()
}

func (m *PrometheusMetrics) RecordUserBlacklisted(_ context.Context) {
	m.usersBlacklisted.Inc()
}

// NoOpMetrics discards all recordings. Tests use it.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordCommandError(context.Context, string)                     {}
func (NoOpMetrics) RecordUserBlacklisted(context.Context)                          {}
