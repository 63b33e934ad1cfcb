package errwatchtypes

import (
	"time"

	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// DefaultThreshold is how many times a user can trip an erroring command
// before being blacklisted.
const DefaultThreshold = 5

// DefaultWarnMessage is sent when a watched command errors and warning
// messages are enabled.
const DefaultWarnMessage = "Please do not use this command anymore.\n\n" +
	"Continued usage of this command will result in you being blacklisted from using " +
	"my commands."

// IgnoreKind selects which ignore list an entry belongs to.
type IgnoreKind string

const (
	IgnoreGuild   IgnoreKind = "guild"
	IgnoreChannel IgnoreKind = "channel"
)

// Valid reports whether the kind is a known ignore list.
func (k IgnoreKind) Valid() bool {
	return k == IgnoreGuild || k == IgnoreChannel
}

// WhitelistKind selects which whitelist an entry belongs to.
type WhitelistKind string

const (
	WhitelistUser    WhitelistKind = "user"
	WhitelistCommand WhitelistKind = "command"
	WhitelistCog     WhitelistKind = "cog"
)

// Valid reports whether the kind is a known whitelist.
func (k WhitelistKind) Valid() bool {
	return k == WhitelistUser || k == WhitelistCommand || k == WhitelistCog
}

// Settings is the watcher's global configuration.
type Settings struct {
	Enabled             bool
	Threshold           int
	ClearUsageDaily     bool
	IgnoredGuilds       []shared.GuildID
	IgnoredChannels     []shared.ChannelID
	WhitelistedUsers    []shared.UserID
	WhitelistedCommands []string
	WhitelistedCogs     []string
	WarnMessage         string
	WarnMessageEnabled  bool
}

// DefaultSettings returns the configuration a fresh install runs with: the
// watcher itself starts disabled, warnings and the daily clear are on.
func DefaultSettings() *Settings {
	return &Settings{
		Enabled:            false,
		Threshold:          DefaultThreshold,
		ClearUsageDaily:    true,
		WarnMessage:        DefaultWarnMessage,
		WarnMessageEnabled: true,
	}
}

// GuildIgnored reports whether the guild is on the ignore list.
func (s *Settings) GuildIgnored(id shared.GuildID) bool {
	for _, g := range s.IgnoredGuilds {
		if g == id {
			return true
		}
	}
	return false
}

// ChannelIgnored reports whether the channel is on the ignore list.
func (s *Settings) ChannelIgnored(id shared.ChannelID) bool {
	for _, c := range s.IgnoredChannels {
		if c == id {
			return true
		}
	}
	return false
}

// UserWhitelisted reports whether the user is whitelisted.
func (s *Settings) UserWhitelisted(id shared.UserID) bool {
	for _, u := range s.WhitelistedUsers {
		if u == id {
			return true
		}
	}
	return false
}

// CommandWhitelisted reports whether the command name is whitelisted.
func (s *Settings) CommandWhitelisted(name string) bool {
	for _, c := range s.WhitelistedCommands {
		if c == name {
			return true
		}
	}
	return false
}

// CogWhitelisted reports whether the cog name is whitelisted.
func (s *Settings) CogWhitelisted(name string) bool {
	for _, c := range s.WhitelistedCogs {
		if c == name {
			return true
		}
	}
	return false
}

// CommandErrorReport is a handled command invocation error as the gateway
// saw it, converted from the wire payload.
type CommandErrorReport struct {
	UserID           shared.UserID
	GuildID          shared.GuildID
	ChannelID        shared.ChannelID
	CommandName      string
	CogName          string
	InvokeError      bool
	HandledElsewhere bool
	InvokerIsOwner   bool
}

// ErrorVerdict is the outcome of recording a command error. The handler turns
// it into zero, one or two outgoing events (warning, blacklist).
type ErrorVerdict struct {
	UserID      shared.UserID
	ChannelID   shared.ChannelID
	CommandName string
	Count       int
	Warn        bool
	WarnMessage string
	Blacklisted bool
	Skipped     bool
	SkipReason  string
}

// BlacklistRecord captures why and when a user was auto-blacklisted.
type BlacklistRecord struct {
	UserID      shared.UserID
	CommandName string
	ErrorCount  int
	CreatedAt   time.Time
}
