package errwatchservice

import (
	"context"

	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// Service defines the error watcher operations.
type Service interface {
	// RecordCommandError applies the ignore/whitelist filters and counts the
	// error; the success payload is an ErrorVerdict.
	RecordCommandError(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error)

	ToggleWatcher(ctx context.Context) (shared.OperationResult, error)
	SetThreshold(ctx context.Context, amount int) (shared.OperationResult, error)
	SetClearUsage(ctx context.Context, enabled bool) (shared.OperationResult, error)

	AddIgnore(ctx context.Context, kind errwatchtypes.IgnoreKind, targetID string) (shared.OperationResult, error)
	RemoveIgnore(ctx context.Context, kind errwatchtypes.IgnoreKind, targetID string) (shared.OperationResult, error)
	ListIgnores(ctx context.Context) (shared.OperationResult, error)

	AddWhitelist(ctx context.Context, kind errwatchtypes.WhitelistKind, value string) (shared.OperationResult, error)
	RemoveWhitelist(ctx context.Context, kind errwatchtypes.WhitelistKind, value string) (shared.OperationResult, error)
	ListWhitelist(ctx context.Context) (shared.OperationResult, error)

	SetWarnMessage(ctx context.Context, text string) (shared.OperationResult, error)
	ToggleWarnMessage(ctx context.Context) (shared.OperationResult, error)

	GetSettings(ctx context.Context) (shared.OperationResult, error)

	// ClearTrackedUsage wipes every user's counters. Scheduled invocations
	// respect the clear-usage setting and report Skipped instead of clearing
	// when it is off.
	ClearTrackedUsage(ctx context.Context, scheduled bool) (shared.OperationResult, error)

	// WarmCache loads persisted counters into memory. Called once at module
	// start.
	WarmCache(ctx context.Context) error
}
