package errwatchhandlers

import (
	"context"
	"errors"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// HandleSettingsRetrieval handles the SettingsRetrievalRequested event.
func (h *ErrwatchHandlers) HandleSettingsRetrieval(ctx context.Context, payload *errwatchevents.SettingsRetrievalRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.SettingsRetrievedV1,
		errwatchevents.SettingsRetrievalFailedV1,
	), nil
}

// HandleUsageClear handles the UsageClearRequested event, published either by
// the daily job (Scheduled) or an owner command.
func (h *ErrwatchHandlers) HandleUsageClear(ctx context.Context, payload *errwatchevents.UsageClearRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ClearTrackedUsage(ctx, payload.Scheduled)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.UsageClearedV1,
		errwatchevents.UsageClearFailedV1,
	), nil
}
