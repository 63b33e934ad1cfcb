package errwatchservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
)

func TestErrwatchService_GetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh install returns defaults", func(t *testing.T) {
		s := newTestService(NewFakeRepository())

		got, err := s.GetSettings(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := got.Success.(*errwatchevents.SettingsRetrievedPayloadV1)
		if payload.Enabled {
			t.Error("expected watcher disabled by default")
		}
		if payload.Threshold != errwatchtypes.DefaultThreshold {
			t.Errorf("expected default threshold, got %d", payload.Threshold)
		}
		if !payload.ClearUsageDaily || !payload.WarnMessageEnabled {
			t.Errorf("unexpected defaults: %+v", payload)
		}
		if payload.WarnMessage != errwatchtypes.DefaultWarnMessage {
			t.Errorf("expected default warning message, got %q", payload.WarnMessage)
		}
	})

	t.Run("message omitted while disabled", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.GetSettingsFunc = func(ctx context.Context) (*errwatchtypes.Settings, error) {
			s := errwatchtypes.DefaultSettings()
			s.WarnMessageEnabled = false
			return s, nil
		}
		s := newTestService(repo)

		got, err := s.GetSettings(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := got.Success.(*errwatchevents.SettingsRetrievedPayloadV1)
		if payload.WarnMessage != "" {
			t.Errorf("expected empty message while disabled, got %q", payload.WarnMessage)
		}
	})

	t.Run("load failure", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.GetSettingsFunc = func(ctx context.Context) (*errwatchtypes.Settings, error) {
			return nil, errors.New("db down")
		}
		s := newTestService(repo)

		got, err := s.GetSettings(ctx)
		if err == nil || !strings.Contains(err.Error(), "db down") {
			t.Fatalf("expected db error, got %v", err)
		}
		failure := got.Failure.(*errwatchevents.SettingsRetrievalFailedPayloadV1)
		if failure.Reason != "db down" {
			t.Errorf("expected reason %q, got %q", "db down", failure.Reason)
		}
	})
}
