package errwatchservice

import (
	"context"

	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	errwatchdb "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/infrastructure/repositories"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// ------------------------
// Fake Errwatch Repo
// ------------------------

// FakeRepository provides a programmable stub for the errwatchdb.Repository interface.
type FakeRepository struct {
	trace []string

	GetSettingsFunc        func(ctx context.Context) (*errwatchtypes.Settings, error)
	SaveSettingsFunc       func(ctx context.Context, settings *errwatchtypes.Settings) error
	AllUserCountsFunc      func(ctx context.Context) (map[shared.UserID]map[string]int, error)
	SaveUserCountsFunc     func(ctx context.Context, userID shared.UserID, counts map[string]int) error
	ClearAllUserCountsFunc func(ctx context.Context) error
	IsBlacklistedFunc      func(ctx context.Context, userID shared.UserID) (bool, error)
	AddBlacklistRecordFunc func(ctx context.Context, record *errwatchtypes.BlacklistRecord) error
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// NewFakeRepository initializes a new FakeRepository with an empty trace.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		trace: []string{},
	}
}

func (f *FakeRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeRepository) GetSettings(ctx context.Context) (*errwatchtypes.Settings, error) {
	f.record("GetSettings")
	if f.GetSettingsFunc != nil {
		return f.GetSettingsFunc(ctx)
	}
	// Default: Return ErrNotFound to simulate a fresh install
	return nil, errwatchdb.ErrNotFound
}

func (f *FakeRepository) SaveSettings(ctx context.Context, settings *errwatchtypes.Settings) error {
	f.record("SaveSettings")
	if f.SaveSettingsFunc != nil {
		return f.SaveSettingsFunc(ctx, settings)
	}
	return nil
}

func (f *FakeRepository) AllUserCounts(ctx context.Context) (map[shared.UserID]map[string]int, error) {
	f.record("AllUserCounts")
	if f.AllUserCountsFunc != nil {
		return f.AllUserCountsFunc(ctx)
	}
	return map[shared.UserID]map[string]int{}, nil
}

func (f *FakeRepository) SaveUserCounts(ctx context.Context, userID shared.UserID, counts map[string]int) error {
	f.record("SaveUserCounts")
	if f.SaveUserCountsFunc != nil {
		return f.SaveUserCountsFunc(ctx, userID, counts)
	}
	return nil
}

func (f *FakeRepository) ClearAllUserCounts(ctx context.Context) error {
	f.record("ClearAllUserCounts")
	if f.ClearAllUserCountsFunc != nil {
		return f.ClearAllUserCountsFunc(ctx)
	}
	return nil
}

func (f *FakeRepository) IsBlacklisted(ctx context.Context, userID shared.UserID) (bool, error) {
	f.record("IsBlacklisted")
	if f.IsBlacklistedFunc != nil {
		return f.IsBlacklistedFunc(ctx, userID)
	}
	return false, nil
}

func (f *FakeRepository) AddBlacklistRecord(ctx context.Context, record *errwatchtypes.BlacklistRecord) error {
	f.record("AddBlacklistRecord")
	if f.AddBlacklistRecordFunc != nil {
		return f.AddBlacklistRecordFunc(ctx, record)
	}
	return nil
}

// Ensure the fake actually satisfies the interface
var _ errwatchdb.Repository = (*FakeRepository)(nil)
