package errwatchhandlers

import (
	"context"

	errwatchservice "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/application"
	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// ------------------------
// Fake Errwatch Service
// ------------------------

// FakeErrwatchService provides a programmable stub for the
// errwatchservice.Service interface. Use this when testing handlers that
// depend on the service.
type FakeErrwatchService struct {
	trace []string

	RecordCommandErrorFunc func(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error)
	ToggleWatcherFunc      func(ctx context.Context) (shared.OperationResult, error)
	SetThresholdFunc       func(ctx context.Context, amount int) (shared.OperationResult, error)
	SetClearUsageFunc      func(ctx context.Context, enabled bool) (shared.OperationResult, error)
	AddIgnoreFunc          func(ctx context.Context, kind errwatchtypes.IgnoreKind, targetID string) (shared.OperationResult, error)
	RemoveIgnoreFunc       func(ctx context.Context, kind errwatchtypes.IgnoreKind, targetID string) (shared.OperationResult, error)
	ListIgnoresFunc        func(ctx context.Context) (shared.OperationResult, error)
	AddWhitelistFunc       func(ctx context.Context, kind errwatchtypes.WhitelistKind, value string) (shared.OperationResult, error)
	RemoveWhitelistFunc    func(ctx context.Context, kind errwatchtypes.WhitelistKind, value string) (shared.OperationResult, error)
	ListWhitelistFunc      func(ctx context.Context) (shared.OperationResult, error)
	SetWarnMessageFunc     func(ctx context.Context, text string) (shared.OperationResult, error)
	ToggleWarnMessageFunc  func(ctx context.Context) (shared.OperationResult, error)
	GetSettingsFunc        func(ctx context.Context) (shared.OperationResult, error)
	ClearTrackedUsageFunc  func(ctx context.Context, scheduled bool) (shared.OperationResult, error)
	WarmCacheFunc          func(ctx context.Context) error
}

// NewFakeErrwatchService initializes a new FakeErrwatchService.
func NewFakeErrwatchService() *FakeErrwatchService {
	return &FakeErrwatchService{
		trace: []string{},
	}
}

func (f *FakeErrwatchService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakeErrwatchService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// --- Service Interface Implementation ---

func (f *FakeErrwatchService) RecordCommandError(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error) {
	f.record("RecordCommandError")
	if f.RecordCommandErrorFunc != nil {
		return f.RecordCommandErrorFunc(ctx, report)
	}
	return shared.SuccessResult(&errwatchtypes.ErrorVerdict{Skipped: true}), nil
}

func (f *FakeErrwatchService) ToggleWatcher(ctx context.Context) (shared.OperationResult, error) {
	f.record("ToggleWatcher")
	if f.ToggleWatcherFunc != nil {
		return f.ToggleWatcherFunc(ctx)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) SetThreshold(ctx context.Context, amount int) (shared.OperationResult, error) {
	f.record("SetThreshold")
	if f.SetThresholdFunc != nil {
		return f.SetThresholdFunc(ctx, amount)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) SetClearUsage(ctx context.Context, enabled bool) (shared.OperationResult, error) {
	f.record("SetClearUsage")
	if f.SetClearUsageFunc != nil {
		return f.SetClearUsageFunc(ctx, enabled)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) AddIgnore(ctx context.Context, kind errwatchtypes.IgnoreKind, targetID string) (shared.OperationResult, error) {
	f.record("AddIgnore")
	if f.AddIgnoreFunc != nil {
		return f.AddIgnoreFunc(ctx, kind, targetID)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) RemoveIgnore(ctx context.Context, kind errwatchtypes.IgnoreKind, targetID string) (shared.OperationResult, error) {
	f.record("RemoveIgnore")
	if f.RemoveIgnoreFunc != nil {
		return f.RemoveIgnoreFunc(ctx, kind, targetID)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) ListIgnores(ctx context.Context) (shared.OperationResult, error) {
	f.record("ListIgnores")
	if f.ListIgnoresFunc != nil {
		return f.ListIgnoresFunc(ctx)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) AddWhitelist(ctx context.Context, kind errwatchtypes.WhitelistKind, value string) (shared.OperationResult, error) {
	f.record("AddWhitelist")
	if f.AddWhitelistFunc != nil {
		return f.AddWhitelistFunc(ctx, kind, value)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) RemoveWhitelist(ctx context.Context, kind errwatchtypes.WhitelistKind, value string) (shared.OperationResult, error) {
	f.record("RemoveWhitelist")
	if f.RemoveWhitelistFunc != nil {
		return f.RemoveWhitelistFunc(ctx, kind, value)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) ListWhitelist(ctx context.Context) (shared.OperationResult, error) {
	f.record("ListWhitelist")
	if f.ListWhitelistFunc != nil {
		return f.ListWhitelistFunc(ctx)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) SetWarnMessage(ctx context.Context, text string) (shared.OperationResult, error) {
	f.record("SetWarnMessage")
	if f.SetWarnMessageFunc != nil {
		return f.SetWarnMessageFunc(ctx, text)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) ToggleWarnMessage(ctx context.Context) (shared.OperationResult, error) {
	f.record("ToggleWarnMessage")
	if f.ToggleWarnMessageFunc != nil {
		return f.ToggleWarnMessageFunc(ctx)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) GetSettings(ctx context.Context) (shared.OperationResult, error) {
	f.record("GetSettings")
	if f.GetSettingsFunc != nil {
		return f.GetSettingsFunc(ctx)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) ClearTrackedUsage(ctx context.Context, scheduled bool) (shared.OperationResult, error) {
	f.record("ClearTrackedUsage")
	if f.ClearTrackedUsageFunc != nil {
		return f.ClearTrackedUsageFunc(ctx, scheduled)
	}
	return shared.OperationResult{}, nil
}

func (f *FakeErrwatchService) WarmCache(ctx context.Context) error {
	f.record("WarmCache")
	if f.WarmCacheFunc != nil {
		return f.WarmCacheFunc(ctx)
	}
	return nil
}

// Ensure the fake satisfies the Service interface
var _ errwatchservice.Service = (*FakeErrwatchService)(nil)
