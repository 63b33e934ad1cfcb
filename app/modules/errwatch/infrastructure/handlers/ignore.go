package errwatchhandlers

import (
	"context"
	"errors"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// HandleIgnoreAdd handles the IgnoreAddRequested event.
func (h *ErrwatchHandlers) HandleIgnoreAdd(ctx context.Context, payload *errwatchevents.IgnoreAddRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.AddIgnore(ctx, payload.Kind, payload.TargetID)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.IgnoreAddedV1,
		errwatchevents.IgnoreAddFailedV1,
	), nil
}

// HandleIgnoreRemove handles the IgnoreRemoveRequested event.
func (h *ErrwatchHandlers) HandleIgnoreRemove(ctx context.Context, payload *errwatchevents.IgnoreRemoveRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RemoveIgnore(ctx, payload.Kind, payload.TargetID)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.IgnoreRemovedV1,
		errwatchevents.IgnoreRemoveFailedV1,
	), nil
}

// HandleIgnoreList handles the IgnoreListRequested event.
func (h *ErrwatchHandlers) HandleIgnoreList(ctx context.Context, payload *errwatchevents.IgnoreListRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ListIgnores(ctx)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.IgnoreListedV1,
		errwatchevents.IgnoreListFailedV1,
	), nil
}
