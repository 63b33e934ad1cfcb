package errwatchdb

import (
	"time"

	"github.com/uptrace/bun"

	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// settingsRowID is the primary key of the single global settings row.
const settingsRowID = 1

// Settings is the persisted watcher configuration. One global row; list
// columns are stored as JSONB.
type Settings struct {
	bun.BaseModel `bun:"table:errwatch_settings,alias:es"`

	ID                  int64              `bun:"id,pk"`
	Enabled             bool               `bun:"enabled,notnull,default:false"`
	Threshold           int                `bun:"threshold,notnull,default:5"`
	ClearUsageDaily     bool               `bun:"clear_usage_daily,notnull,default:true"`
	IgnoredGuilds       []shared.GuildID   `bun:"ignored_guilds,type:jsonb"`
	IgnoredChannels     []shared.ChannelID `bun:"ignored_channels,type:jsonb"`
	WhitelistedUsers    []shared.UserID    `bun:"whitelisted_users,type:jsonb"`
	WhitelistedCommands []string           `bun:"whitelisted_commands,type:jsonb"`
	WhitelistedCogs     []string           `bun:"whitelisted_cogs,type:jsonb"`
	WarnMessage         string             `bun:"warn_message,notnull"`
	WarnMessageEnabled  bool               `bun:"warn_message_enabled,notnull,default:true"`
	CreatedAt           time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt           time.Time          `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// UserErrorCount mirrors the in-memory per-user counters: command name to the
// number of times that command has errored for the user.
type UserErrorCount struct {
	bun.BaseModel `bun:"table:errwatch_user_errors,alias:ue"`

	UserID    shared.UserID  `bun:"user_id,pk,type:varchar(20)"`
	Counts    map[string]int `bun:"counts,type:jsonb"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// BlacklistRecord is a user auto-blacklisted by the watcher.
type BlacklistRecord struct {
	bun.BaseModel `bun:"table:errwatch_blacklist,alias:bl"`

	UserID      shared.UserID `bun:"user_id,pk,type:varchar(20)"`
	CommandName string        `bun:"command_name,notnull"`
	ErrorCount  int           `bun:"error_count,notnull"`
	CreatedAt   time.Time     `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toDomainSettings(row *Settings) *errwatchtypes.Settings {
	if row == nil {
		return nil
	}
	return &errwatchtypes.Settings{
		Enabled:             row.Enabled,
		Threshold:           row.Threshold,
		ClearUsageDaily:     row.ClearUsageDaily,
		IgnoredGuilds:       row.IgnoredGuilds,
		IgnoredChannels:     row.IgnoredChannels,
		WhitelistedUsers:    row.WhitelistedUsers,
		WhitelistedCommands: row.WhitelistedCommands,
		WhitelistedCogs:     row.WhitelistedCogs,
		WarnMessage:         row.WarnMessage,
		WarnMessageEnabled:  row.WarnMessageEnabled,
	}
}

func toSettingsRow(s *errwatchtypes.Settings) *Settings {
	if s == nil {
		return nil
	}
	return &Settings{
		ID:                  settingsRowID,
		Enabled:             s.Enabled,
		Threshold:           s.Threshold,
		ClearUsageDaily:     s.ClearUsageDaily,
		IgnoredGuilds:       s.IgnoredGuilds,
		IgnoredChannels:     s.IgnoredChannels,
		WhitelistedUsers:    s.WhitelistedUsers,
		WhitelistedCommands: s.WhitelistedCommands,
		WhitelistedCogs:     s.WhitelistedCogs,
		WarnMessage:         s.WarnMessage,
		WarnMessageEnabled:  s.WarnMessageEnabled,
	}
}
