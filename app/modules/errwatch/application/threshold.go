package errwatchservice

import (
	"context"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// SetThreshold sets how many errors of one command a user is allowed before
// being blacklisted. The threshold comparison is >=, so lowering it can trip
// affected users on their next error.
func (s *ErrwatchService) SetThreshold(ctx context.Context, amount int) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "SetThreshold", func(ctx context.Context) (shared.OperationResult, error) {
		if amount < 2 {
			return thresholdFailure(amount, ErrThresholdTooLow), nil
		}

		settings, err := s.loadSettings(ctx)
		if err != nil {
			return thresholdFailure(amount, err), err
		}

		settings.Threshold = amount
		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return thresholdFailure(amount, err), err
		}

		return shared.SuccessResult(&errwatchevents.ThresholdSetPayloadV1{
			Amount: amount,
		}), nil
	})
}

func thresholdFailure(amount int, err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.ThresholdSetFailedPayloadV1{
		Amount: amount,
		Reason: err.Error(),
	})
}
