package errwatchservice

import (
	"context"
	"log/slog"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// SetClearUsage toggles the daily wipe of tracked error counts. Requesting
// the state it is already in is a domain failure so the gateway can tell the
// owner nothing changed.
func (s *ErrwatchService) SetClearUsage(ctx context.Context, enabled bool) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "SetClearUsage", func(ctx context.Context) (shared.OperationResult, error) {
		settings, err := s.loadSettings(ctx)
		if err != nil {
			return clearUsageSetFailure(enabled, err), err
		}

		if settings.ClearUsageDaily == enabled {
			return clearUsageSetFailure(enabled, ErrClearUsageUnchanged), nil
		}

		settings.ClearUsageDaily = enabled
		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return clearUsageSetFailure(enabled, err), err
		}

		return shared.SuccessResult(&errwatchevents.ClearUsageSetPayloadV1{
			Enabled: enabled,
		}), nil
	})
}

func clearUsageSetFailure(enabled bool, err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.ClearUsageSetFailedPayloadV1{
		Enabled: enabled,
		Reason:  err.Error(),
	})
}

// ClearTrackedUsage wipes every user's error counters from memory and
// storage. Scheduled invocations no-op when the daily clear is disabled.
func (s *ErrwatchService) ClearTrackedUsage(ctx context.Context, scheduled bool) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "ClearTrackedUsage", func(ctx context.Context) (shared.OperationResult, error) {
		if scheduled {
			settings, err := s.loadSettings(ctx)
			if err != nil {
				return usageClearFailure(err), err
			}
			if !settings.ClearUsageDaily {
				return shared.SuccessResult(&errwatchevents.UsageClearedPayloadV1{
					Skipped: true,
				}), nil
			}
		}

		if err := s.repo.ClearAllUserCounts(ctx); err != nil {
			return usageClearFailure(err), err
		}
		s.resetCache()

		s.logger.InfoContext(ctx, "Cleared tracked command error usage",
			slog.Bool("scheduled", scheduled),
		)
		return shared.SuccessResult(&errwatchevents.UsageClearedPayloadV1{}), nil
	})
}

func usageClearFailure(err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.UsageClearFailedPayloadV1{
		Reason: err.Error(),
	})
}
