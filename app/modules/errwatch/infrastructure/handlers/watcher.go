package errwatchhandlers

import (
	"context"
	"errors"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// HandleWatcherToggle handles the WatcherToggleRequested event.
func (h *ErrwatchHandlers) HandleWatcherToggle(ctx context.Context, payload *errwatchevents.WatcherTogglePayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ToggleWatcher(ctx)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.WatcherToggledV1,
		errwatchevents.WatcherToggleFailedV1,
	), nil
}

// HandleThresholdSet handles the ThresholdSetRequested event.
func (h *ErrwatchHandlers) HandleThresholdSet(ctx context.Context, payload *errwatchevents.ThresholdSetRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetThreshold(ctx, payload.Amount)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.ThresholdSetV1,
		errwatchevents.ThresholdSetFailedV1,
	), nil
}

// HandleClearUsageSet handles the ClearUsageSetRequested event.
func (h *ErrwatchHandlers) HandleClearUsageSet(ctx context.Context, payload *errwatchevents.ClearUsageSetRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetClearUsage(ctx, payload.Enabled)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.ClearUsageSetV1,
		errwatchevents.ClearUsageSetFailedV1,
	), nil
}
