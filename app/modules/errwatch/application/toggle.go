package errwatchservice

import (
	"context"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// ToggleWatcher flips the watcher on or off and reports the resulting state.
func (s *ErrwatchService) ToggleWatcher(ctx context.Context) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "ToggleWatcher", func(ctx context.Context) (shared.OperationResult, error) {
		settings, err := s.loadSettings(ctx)
		if err != nil {
			return toggleFailure(err), err
		}

		settings.Enabled = !settings.Enabled
		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return toggleFailure(err), err
		}

		return shared.SuccessResult(&errwatchevents.WatcherToggledPayloadV1{
			Enabled: settings.Enabled,
		}), nil
	})
}

func toggleFailure(err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.WatcherToggleFailedPayloadV1{
		Reason: err.Error(),
	})
}
