package errwatchservice

import (
	"context"
	"testing"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
)

func TestErrwatchService_SetWarnMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("custom message", func(t *testing.T) {
		repo := NewFakeRepository()
		var saved *errwatchtypes.Settings
		repo.SaveSettingsFunc = func(ctx context.Context, settings *errwatchtypes.Settings) error {
			saved = settings
			return nil
		}
		s := newTestService(repo)

		got, err := s.SetWarnMessage(ctx, "Stop breaking things.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := got.Success.(*errwatchevents.WarnMessageSetPayloadV1)
		if payload.Message != "Stop breaking things." || payload.Reset {
			t.Errorf("unexpected payload %+v", payload)
		}
		if saved == nil || saved.WarnMessage != "Stop breaking things." {
			t.Error("expected custom message persisted")
		}
	})

	t.Run("empty message resets to default", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.GetSettingsFunc = func(ctx context.Context) (*errwatchtypes.Settings, error) {
			s := errwatchtypes.DefaultSettings()
			s.WarnMessage = "old custom text"
			return s, nil
		}
		var saved *errwatchtypes.Settings
		repo.SaveSettingsFunc = func(ctx context.Context, settings *errwatchtypes.Settings) error {
			saved = settings
			return nil
		}
		s := newTestService(repo)

		got, err := s.SetWarnMessage(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := got.Success.(*errwatchevents.WarnMessageSetPayloadV1)
		if !payload.Reset {
			t.Error("expected reset flag")
		}
		if payload.Message != errwatchtypes.DefaultWarnMessage {
			t.Errorf("expected default message, got %q", payload.Message)
		}
		if saved == nil || saved.WarnMessage != errwatchtypes.DefaultWarnMessage {
			t.Error("expected default message persisted")
		}
	})
}

func TestErrwatchService_ToggleWarnMessage(t *testing.T) {
	ctx := context.Background()

	repo := NewFakeRepository()
	var saved *errwatchtypes.Settings
	repo.SaveSettingsFunc = func(ctx context.Context, settings *errwatchtypes.Settings) error {
		saved = settings
		return nil
	}
	s := newTestService(repo)

	// Defaults have warnings on, so the first toggle turns them off.
	got, err := s.ToggleWarnMessage(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := got.Success.(*errwatchevents.WarnMessageToggledPayloadV1)
	if payload.Enabled {
		t.Error("expected warnings disabled after first toggle")
	}
	if saved == nil || saved.WarnMessageEnabled {
		t.Error("expected disabled state persisted")
	}
}
