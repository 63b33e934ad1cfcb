package errwatchhandlers

import (
	"context"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// Handlers defines the contract for error watcher event handlers.
type Handlers interface {
	HandleCommandErrored(ctx context.Context, payload *errwatchevents.CommandErroredPayloadV1) ([]shared.HandlerResult, error)

	HandleWatcherToggle(ctx context.Context, payload *errwatchevents.WatcherTogglePayloadV1) ([]shared.HandlerResult, error)
	HandleThresholdSet(ctx context.Context, payload *errwatchevents.ThresholdSetRequestedPayloadV1) ([]shared.HandlerResult, error)
	HandleClearUsageSet(ctx context.Context, payload *errwatchevents.ClearUsageSetRequestedPayloadV1) ([]shared.HandlerResult, error)

	HandleIgnoreAdd(ctx context.Context, payload *errwatchevents.IgnoreAddRequestedPayloadV1) ([]shared.HandlerResult, error)
	HandleIgnoreRemove(ctx context.Context, payload *errwatchevents.IgnoreRemoveRequestedPayloadV1) ([]shared.HandlerResult, error)
	HandleIgnoreList(ctx context.Context, payload *errwatchevents.IgnoreListRequestedPayloadV1) ([]shared.HandlerResult, error)

	HandleWhitelistAdd(ctx context.Context, payload *errwatchevents.WhitelistAddRequestedPayloadV1) ([]shared.HandlerResult, error)
	HandleWhitelistRemove(ctx context.Context, payload *errwatchevents.WhitelistRemoveRequestedPayloadV1) ([]shared.HandlerResult, error)
	HandleWhitelistList(ctx context.Context, payload *errwatchevents.WhitelistListRequestedPayloadV1) ([]shared.HandlerResult, error)

	HandleWarnMessageSet(ctx context.Context, payload *errwatchevents.WarnMessageSetRequestedPayloadV1) ([]shared.HandlerResult, error)
	HandleWarnMessageToggle(ctx context.Context, payload *errwatchevents.WarnMessageTogglePayloadV1) ([]shared.HandlerResult, error)

	HandleSettingsRetrieval(ctx context.Context, payload *errwatchevents.SettingsRetrievalRequestedPayloadV1) ([]shared.HandlerResult, error)
	HandleUsageClear(ctx context.Context, payload *errwatchevents.UsageClearRequestedPayloadV1) ([]shared.HandlerResult, error)
}
