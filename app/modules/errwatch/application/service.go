package errwatchservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	errwatchdb "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/infrastructure/repositories"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
	"github.com/Cedar-Hollow-Club/errwatch-bot/internal/observability"
)

// ErrwatchService implements the Service interface. Error counters live in
// memory (warmed from storage at start) and are mirrored into the repository
// on every increment.
type ErrwatchService struct {
	repo    errwatchdb.Repository
	logger  *slog.Logger
	metrics observability.ErrwatchMetrics
	tracer  trace.Tracer

	mu    sync.Mutex
	cache map[shared.UserID]map[string]int
}

// NewErrwatchService creates a new ErrwatchService.
func NewErrwatchService(
	repo errwatchdb.Repository,
	logger *slog.Logger,
	metrics observability.ErrwatchMetrics,
	tracer trace.Tracer,
) *ErrwatchService {
	return &ErrwatchService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		cache:   make(map[shared.UserID]map[string]int),
	}
}

var _ Service = (*ErrwatchService)(nil)

// WarmCache loads the persisted per-user counters into memory, mirroring what
// the watcher had before the last shutdown.
func (s *ErrwatchService) WarmCache(ctx context.Context) error {
	counts, err := s.repo.AllUserCounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load user error counts: %w", err)
	}

	s.mu.Lock()
	s.cache = counts
	if s.cache == nil {
		s.cache = make(map[shared.UserID]map[string]int)
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Error counter cache warmed",
		slog.Int("users", len(counts)),
	)
	return nil
}

// loadSettings returns the persisted settings, falling back to defaults when
// no row has been written yet.
func (s *ErrwatchService) loadSettings(ctx context.Context) (*errwatchtypes.Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, errwatchdb.ErrNotFound) {
			return errwatchtypes.DefaultSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

// bump increments the user's counter for the command and returns the new
// count plus a snapshot of the user's counters for mirroring to storage.
func (s *ErrwatchService) bump(userID shared.UserID, commandName string) (int, map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := s.cache[userID]
	if counts == nil {
		counts = make(map[string]int)
		s.cache[userID] = counts
	}
	counts[commandName]++

	snapshot := make(map[string]int, len(counts))
	for k, v := range counts {
		snapshot[k] = v
	}
	return counts[commandName], snapshot
}

// resetCache drops every tracked counter.
func (s *ErrwatchService) resetCache() {
	s.mu.Lock()
	s.cache = make(map[shared.UserID]map[string]int)
	s.mu.Unlock()
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (shared.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics and panic
// recovery so every operation reports the same way.
func (s *ErrwatchService) withTelemetry(
	ctx context.Context,
	operationName string,
	op operationFunc,
) (result shared.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", operationName),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = shared.OperationResult{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.Any("error", wrappedErr),
			slog.Bool("result_has_failure", result.Failure != nil),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.Failure != nil {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			slog.String("operation", operationName),
			slog.String("failure_type", fmt.Sprintf("%T", result.Failure)),
		)
		// Business validation failed but the operation itself succeeded;
		// not recorded as an operation failure.
	}

	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}
