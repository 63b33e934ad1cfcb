package errwatchservice

import (
	"context"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// SetWarnMessage updates the warning text sent on every tracked error. An
// empty message restores the default text.
func (s *ErrwatchService) SetWarnMessage(ctx context.Context, message string) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "SetWarnMessage", func(ctx context.Context) (shared.OperationResult, error) {
		settings, err := s.loadSettings(ctx)
		if err != nil {
			return warnMessageSetFailure(err), err
		}

		reset := message == ""
		if reset {
			settings.WarnMessage = errwatchtypes.DefaultWarnMessage
		} else {
			settings.WarnMessage = message
		}

		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return warnMessageSetFailure(err), err
		}

		return shared.SuccessResult(&errwatchevents.WarnMessageSetPayloadV1{
			Message: settings.WarnMessage,
			Reset:   reset,
		}), nil
	})
}

// ToggleWarnMessage flips whether the warning message is sent at all.
func (s *ErrwatchService) ToggleWarnMessage(ctx context.Context) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "ToggleWarnMessage", func(ctx context.Context) (shared.OperationResult, error) {
		settings, err := s.loadSettings(ctx)
		if err != nil {
			return warnMessageToggleFailure(err), err
		}

		settings.WarnMessageEnabled = !settings.WarnMessageEnabled

		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return warnMessageToggleFailure(err), err
		}

		return shared.SuccessResult(&errwatchevents.WarnMessageToggledPayloadV1{
			Enabled: settings.WarnMessageEnabled,
		}), nil
	})
}

func warnMessageSetFailure(err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.WarnMessageSetFailedPayloadV1{
		Reason: err.Error(),
	})
}

func warnMessageToggleFailure(err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.WarnMessageToggleFailedPayloadV1{
		Reason: err.Error(),
	})
}
