package errwatchservice

import (
	"context"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// GetSettings returns the current watcher configuration. The warning text is
// omitted while message sending is disabled.
func (s *ErrwatchService) GetSettings(ctx context.Context) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "GetSettings", func(ctx context.Context) (shared.OperationResult, error) {
		settings, err := s.loadSettings(ctx)
		if err != nil {
			return shared.FailureResult(&errwatchevents.SettingsRetrievalFailedPayloadV1{
				Reason: err.Error(),
			}), err
		}

		payload := &errwatchevents.SettingsRetrievedPayloadV1{
			Enabled:            settings.Enabled,
			Threshold:          settings.Threshold,
			ClearUsageDaily:    settings.ClearUsageDaily,
			WarnMessageEnabled: settings.WarnMessageEnabled,
		}
		if settings.WarnMessageEnabled {
			payload.WarnMessage = settings.WarnMessage
		}

		return shared.SuccessResult(payload), nil
	})
}
