package errwatchqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// clearUsageInterval is how often tracked error counts are wiped.
const clearUsageInterval = 24 * time.Hour

// QueueService defines the contract for the periodic clear job.
type QueueService interface {
	// Start starts the queue service and its periodic jobs.
	Start(ctx context.Context) error
	// Stop stops the queue service.
	Stop(ctx context.Context) error
	// HealthCheck verifies the queue service is healthy.
	HealthCheck(ctx context.Context) error
}

// Ensure Service implements QueueService
var _ QueueService = (*Service)(nil)

// Service schedules the daily usage clear using River.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewService creates a River-backed queue service with the daily clear job
// registered. The first run fires one interval after start, not immediately.
func NewService(ctx context.Context, logger *slog.Logger, dsn string, eventBus shared.EventBus) (*Service, error) {
	ctxLogger := logger.With(
		slog.String("operation", "new_errwatch_queue_service"),
		slog.String("component", "river_queue"),
	)

	ctxLogger.InfoContext(ctx, "Initializing errwatch queue service")

	// River requires pgx, not database/sql
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewClearUsageWorker(ctxLogger, eventBus))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(clearUsageInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return ClearUsageJob{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: false},
			),
		},
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	ctxLogger.InfoContext(ctx, "Errwatch queue service initialized")
	return &Service{
		client: riverClient,
		pool:   pool,
		logger: ctxLogger,
	}, nil
}

// Start starts the River client.
func (s *Service) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting errwatch queue service")
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	return nil
}

// Stop stops the River client and releases the pool.
func (s *Service) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping errwatch queue service")
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	return nil
}

// HealthCheck verifies the underlying database connection.
func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("queue database unreachable: %w", err)
	}
	return nil
}

// ClearUsageWorker publishes the scheduled usage-clear request when the
// periodic job fires.
type ClearUsageWorker struct {
	river.WorkerDefaults[ClearUsageJob]
	logger   *slog.Logger
	eventBus shared.EventBus
}

// NewClearUsageWorker creates a new ClearUsageWorker.
func NewClearUsageWorker(logger *slog.Logger, eventBus shared.EventBus) *ClearUsageWorker {
	return &ClearUsageWorker{
		logger:   logger,
		eventBus: eventBus,
	}
}

// Work publishes the scheduled usage-clear event.
func (w *ClearUsageWorker) Work(ctx context.Context, job *river.Job[ClearUsageJob]) error {
	payload := errwatchevents.UsageClearRequestedPayloadV1{
		Scheduled: true,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal usage clear payload: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), raw)
	msg.SetContext(ctx)

	if err := w.eventBus.Publish(errwatchevents.UsageClearRequestedV1, msg); err != nil {
		return fmt.Errorf("failed to publish usage clear request: %w", err)
	}

	w.logger.InfoContext(ctx, "Published scheduled usage clear request",
		slog.Int64("job_id", job.ID),
	)
	return nil
}
