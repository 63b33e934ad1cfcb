package errwatchhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// HandleCommandErrored handles the CommandErrored event. A skipped verdict
// produces no messages; a counted error produces a warning and, at the
// threshold, a blacklist instruction for the gateway.
func (h *ErrwatchHandlers) HandleCommandErrored(ctx context.Context, payload *errwatchevents.CommandErroredPayloadV1) ([]shared.HandlerResult, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	// Convert event payload to domain model
	report := &errwatchtypes.CommandErrorReport{
		UserID:           payload.UserID,
		GuildID:          payload.GuildID,
		ChannelID:        payload.ChannelID,
		CommandName:      payload.CommandName,
		CogName:          payload.CogName,
		InvokeError:      payload.InvokeError,
		HandledElsewhere: payload.HandledElsewhere,
		InvokerIsOwner:   payload.InvokerIsOwner,
	}

	result, err := h.service.RecordCommandError(ctx, report)
	if err != nil {
		return nil, err
	}

	verdict, ok := result.Success.(*errwatchtypes.ErrorVerdict)
	if !ok {
		return nil, fmt.Errorf("unexpected result payload %T", result.Success)
	}

	if verdict.Skipped {
		h.logger.DebugContext(ctx, "Command error skipped",
			slog.String("user_id", verdict.UserID.String()),
			slog.String("command", verdict.CommandName),
			slog.String("reason", verdict.SkipReason),
		)
		return nil, nil
	}

	var results []shared.HandlerResult
	if verdict.Warn {
		results = append(results, shared.HandlerResult{
			Topic: errwatchevents.UserWarnedV1,
			Payload: &errwatchevents.UserWarnedPayloadV1{
				UserID:    verdict.UserID,
				ChannelID: verdict.ChannelID,
				Message:   verdict.WarnMessage,
			},
		})
	}
	if verdict.Blacklisted {
		results = append(results, shared.HandlerResult{
			Topic: errwatchevents.UserBlacklistedV1,
			Payload: &errwatchevents.UserBlacklistedPayloadV1{
				UserID:      verdict.UserID,
				CommandName: verdict.CommandName,
				ErrorCount:  verdict.Count,
			},
		})
	}
	return results, nil
}
