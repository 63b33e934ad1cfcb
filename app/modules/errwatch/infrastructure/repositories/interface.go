package errwatchdb

import (
	"context"
	"errors"

	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Repository is the persistence contract for the error watcher.
//
// Error semantics:
//   - ErrNotFound: settings row does not exist yet (GetSettings)
//   - Other errors: infrastructure failures (connection, query errors)
type Repository interface {
	// GetSettings returns the global watcher settings.
	// Returns ErrNotFound when no settings row has been written yet.
	GetSettings(ctx context.Context) (*errwatchtypes.Settings, error)

	// SaveSettings writes the full settings row with UPSERT semantics.
	SaveSettings(ctx context.Context, settings *errwatchtypes.Settings) error

	// AllUserCounts loads every user's error counters, keyed by user ID.
	// Used to warm the in-memory cache at module start.
	AllUserCounts(ctx context.Context) (map[shared.UserID]map[string]int, error)

	// SaveUserCounts mirrors a user's in-memory counters into storage,
	// creating the row if needed.
	SaveUserCounts(ctx context.Context, userID shared.UserID, counts map[string]int) error

	// ClearAllUserCounts removes every user's counters.
	ClearAllUserCounts(ctx context.Context) error

	// IsBlacklisted reports whether the watcher has blacklisted the user.
	IsBlacklisted(ctx context.Context, userID shared.UserID) (bool, error)

	// AddBlacklistRecord stores an auto-blacklist outcome. Idempotent:
	// inserting an already-blacklisted user is not an error.
	AddBlacklistRecord(ctx context.Context, record *errwatchtypes.BlacklistRecord) error
}
