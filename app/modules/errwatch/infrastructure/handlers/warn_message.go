package errwatchhandlers

import (
	"context"
	"errors"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// HandleWarnMessageSet handles the WarnMessageSetRequested event.
func (h *ErrwatchHandlers) HandleWarnMessageSet(ctx context.Context, payload *errwatchevents.WarnMessageSetRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetWarnMessage(ctx, payload.Message)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.WarnMessageSetV1,
		errwatchevents.WarnMessageSetFailedV1,
	), nil
}

// HandleWarnMessageToggle handles the WarnMessageToggleRequested event.
func (h *ErrwatchHandlers) HandleWarnMessageToggle(ctx context.Context, payload *errwatchevents.WarnMessageTogglePayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ToggleWarnMessage(ctx)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.WarnMessageToggledV1,
		errwatchevents.WarnMessageToggleFailedV1,
	), nil
}
