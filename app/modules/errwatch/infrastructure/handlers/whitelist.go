package errwatchhandlers

import (
	"context"
	"errors"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// HandleWhitelistAdd handles the WhitelistAddRequested event.
func (h *ErrwatchHandlers) HandleWhitelistAdd(ctx context.Context, payload *errwatchevents.WhitelistAddRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.AddWhitelist(ctx, payload.Kind, payload.Value)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.WhitelistAddedV1,
		errwatchevents.WhitelistAddFailedV1,
	), nil
}

// HandleWhitelistRemove handles the WhitelistRemoveRequested event.
func (h *ErrwatchHandlers) HandleWhitelistRemove(ctx context.Context, payload *errwatchevents.WhitelistRemoveRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RemoveWhitelist(ctx, payload.Kind, payload.Value)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.WhitelistRemovedV1,
		errwatchevents.WhitelistRemoveFailedV1,
	), nil
}

// HandleWhitelistList handles the WhitelistListRequested event.
func (h *ErrwatchHandlers) HandleWhitelistList(ctx context.Context, payload *errwatchevents.WhitelistListRequestedPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ListWhitelist(ctx)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		errwatchevents.WhitelistListedV1,
		errwatchevents.WhitelistListFailedV1,
	), nil
}
