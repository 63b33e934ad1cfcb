package errwatchservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
	"github.com/Cedar-Hollow-Club/errwatch-bot/internal/observability"
)

// newTestService wires an ErrwatchService to the fake repository with no-op
// telemetry.
func newTestService(repo *FakeRepository) *ErrwatchService {
	return NewErrwatchService(
		repo,
		slog.New(slog.DiscardHandler),
		&observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}

func TestErrwatchService_WarmCache(t *testing.T) {
	ctx := context.Background()

	t.Run("loads persisted counters", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.AllUserCountsFunc = func(ctx context.Context) (map[shared.UserID]map[string]int, error) {
			return map[shared.UserID]map[string]int{
				"user-1": {"ping": 3},
			}, nil
		}
		s := newTestService(repo)

		if err := s.WarmCache(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, _ := s.bump("user-1", "ping")
		if count != 4 {
			t.Errorf("expected warmed counter to continue at 4, got %d", count)
		}
	})

	t.Run("nil counts map is replaced", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.AllUserCountsFunc = func(ctx context.Context) (map[shared.UserID]map[string]int, error) {
			return nil, nil
		}
		s := newTestService(repo)

		if err := s.WarmCache(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, _ := s.bump("user-1", "ping")
		if count != 1 {
			t.Errorf("expected fresh counter 1, got %d", count)
		}
	})

	t.Run("load error surfaces", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.AllUserCountsFunc = func(ctx context.Context) (map[shared.UserID]map[string]int, error) {
			return nil, errors.New("db down")
		}
		s := newTestService(repo)

		if err := s.WarmCache(ctx); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestErrwatchService_bump(t *testing.T) {
	s := newTestService(NewFakeRepository())

	count, snapshot := s.bump("user-1", "ping")
	if count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}
	if snapshot["ping"] != 1 {
		t.Errorf("expected snapshot to hold 1, got %d", snapshot["ping"])
	}

	count, _ = s.bump("user-1", "ping")
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}

	// Snapshot is a copy: mutating it must not affect the live cache.
	snapshot["ping"] = 99
	count, _ = s.bump("user-1", "ping")
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}

	count, _ = s.bump("user-2", "ping")
	if count != 1 {
		t.Errorf("expected independent counter per user, got %d", count)
	}
}
