package errwatchevents

import (
	"time"

	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// StreamName is the JetStream stream carrying all errwatch subjects.
const StreamName = "errwatch"

// StreamSubjects covers every errwatch topic.
const StreamSubjects = "errwatch.>"

// Gateway-facing topics.
const (
	// CommandErroredV1 is published by the gateway whenever a command raises
	// a handled invocation error.
	CommandErroredV1 = "errwatch.command.errored.v1"
	// UserWarnedV1 instructs the gateway to send the warning message.
	UserWarnedV1 = "errwatch.user.warned.v1"
	// UserBlacklistedV1 instructs the gateway to blacklist the user.
	UserBlacklistedV1 = "errwatch.user.blacklisted.v1"
)

// Management topics (owner-only commands relayed by the gateway).
const (
	WatcherToggleRequestedV1 = "errwatch.watcher.toggle.requested.v1"
	WatcherToggledV1         = "errwatch.watcher.toggled.v1"
	WatcherToggleFailedV1    = "errwatch.watcher.toggle.failed.v1"

	ThresholdSetRequestedV1 = "errwatch.threshold.set.requested.v1"
	ThresholdSetV1          = "errwatch.threshold.set.v1"
	ThresholdSetFailedV1    = "errwatch.threshold.set.failed.v1"

	ClearUsageSetRequestedV1 = "errwatch.clearusage.set.requested.v1"
	ClearUsageSetV1          = "errwatch.clearusage.set.v1"
	ClearUsageSetFailedV1    = "errwatch.clearusage.set.failed.v1"

	IgnoreAddRequestedV1    = "errwatch.ignore.add.requested.v1"
	IgnoreAddedV1           = "errwatch.ignore.added.v1"
	IgnoreAddFailedV1       = "errwatch.ignore.add.failed.v1"
	IgnoreRemoveRequestedV1 = "errwatch.ignore.remove.requested.v1"
	IgnoreRemovedV1         = "errwatch.ignore.removed.v1"
	IgnoreRemoveFailedV1    = "errwatch.ignore.remove.failed.v1"
	IgnoreListRequestedV1   = "errwatch.ignore.list.requested.v1"
	IgnoreListedV1          = "errwatch.ignore.listed.v1"
	IgnoreListFailedV1      = "errwatch.ignore.list.failed.v1"

	WhitelistAddRequestedV1    = "errwatch.whitelist.add.requested.v1"
	WhitelistAddedV1           = "errwatch.whitelist.added.v1"
	WhitelistAddFailedV1       = "errwatch.whitelist.add.failed.v1"
	WhitelistRemoveRequestedV1 = "errwatch.whitelist.remove.requested.v1"
	WhitelistRemovedV1         = "errwatch.whitelist.removed.v1"
	WhitelistRemoveFailedV1    = "errwatch.whitelist.remove.failed.v1"
	WhitelistListRequestedV1   = "errwatch.whitelist.list.requested.v1"
	WhitelistListedV1          = "errwatch.whitelist.listed.v1"
	WhitelistListFailedV1      = "errwatch.whitelist.list.failed.v1"

	WarnMessageSetRequestedV1    = "errwatch.warnmessage.set.requested.v1"
	WarnMessageSetV1             = "errwatch.warnmessage.set.v1"
	WarnMessageSetFailedV1       = "errwatch.warnmessage.set.failed.v1"
	WarnMessageToggleRequestedV1 = "errwatch.warnmessage.toggle.requested.v1"
	WarnMessageToggledV1         = "errwatch.warnmessage.toggled.v1"
	WarnMessageToggleFailedV1    = "errwatch.warnmessage.toggle.failed.v1"

	SettingsRetrievalRequestedV1 = "errwatch.settings.retrieval.requested.v1"
	SettingsRetrievedV1          = "errwatch.settings.retrieved.v1"
	SettingsRetrievalFailedV1    = "errwatch.settings.retrieval.failed.v1"

	UsageClearRequestedV1 = "errwatch.usage.clear.requested.v1"
	UsageClearedV1        = "errwatch.usage.cleared.v1"
	UsageClearFailedV1    = "errwatch.usage.clear.failed.v1"
)

// CommandErroredPayloadV1 describes a handled command invocation error. The
// gateway only publishes errors that were not consumed by a command or cog
// error handler; HandledElsewhere and InvokeError let the watcher double-check.
type CommandErroredPayloadV1 struct {
	UserID           shared.UserID    `json:"user_id"`
	GuildID          shared.GuildID   `json:"guild_id,omitempty"`
	ChannelID        shared.ChannelID `json:"channel_id,omitempty"`
	CommandName      string           `json:"command_name"`
	CogName          string           `json:"cog_name,omitempty"`
	InvokeError      bool             `json:"invoke_error"`
	HandledElsewhere bool             `json:"handled_elsewhere"`
	InvokerIsOwner   bool             `json:"invoker_is_owner"`
	ErroredAt        time.Time        `json:"errored_at"`
}

// UserWarnedPayloadV1 tells the gateway to post the warning message in the
// channel the erroring command was used in.
type UserWarnedPayloadV1 struct {
	UserID    shared.UserID    `json:"user_id"`
	ChannelID shared.ChannelID `json:"channel_id,omitempty"`
	Message   string           `json:"message"`
}

// UserBlacklistedPayloadV1 tells the gateway to add the user to the bot
// blacklist.
type UserBlacklistedPayloadV1 struct {
	UserID      shared.UserID `json:"user_id"`
	CommandName string        `json:"command_name"`
	ErrorCount  int           `json:"error_count"`
}

type WatcherTogglePayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id"`
}

type WatcherToggledPayloadV1 struct {
	Enabled bool `json:"enabled"`
}

type WatcherToggleFailedPayloadV1 struct {
	Reason string `json:"reason"`
}

type ThresholdSetRequestedPayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id"`
	Amount      int           `json:"amount"`
}

type ThresholdSetPayloadV1 struct {
	Amount int `json:"amount"`
}

type ThresholdSetFailedPayloadV1 struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

type ClearUsageSetRequestedPayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id"`
	Enabled     bool          `json:"enabled"`
}

type ClearUsageSetPayloadV1 struct {
	Enabled bool `json:"enabled"`
}

type ClearUsageSetFailedPayloadV1 struct {
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason"`
}

type IgnoreAddRequestedPayloadV1 struct {
	RequesterID shared.UserID            `json:"requester_id"`
	Kind        errwatchtypes.IgnoreKind `json:"kind"`
	TargetID    string                   `json:"target_id"`
}

type IgnoreAddedPayloadV1 struct {
	Kind     errwatchtypes.IgnoreKind `json:"kind"`
	TargetID string                   `json:"target_id"`
}

type IgnoreAddFailedPayloadV1 struct {
	Kind     errwatchtypes.IgnoreKind `json:"kind"`
	TargetID string                   `json:"target_id"`
	Reason   string                   `json:"reason"`
}

type IgnoreRemoveRequestedPayloadV1 struct {
	RequesterID shared.UserID            `json:"requester_id"`
	Kind        errwatchtypes.IgnoreKind `json:"kind"`
	TargetID    string                   `json:"target_id"`
}

type IgnoreRemovedPayloadV1 struct {
	Kind     errwatchtypes.IgnoreKind `json:"kind"`
	TargetID string                   `json:"target_id"`
}

type IgnoreRemoveFailedPayloadV1 struct {
	Kind     errwatchtypes.IgnoreKind `json:"kind"`
	TargetID string                   `json:"target_id"`
	Reason   string                   `json:"reason"`
}

type IgnoreListRequestedPayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id"`
}

type IgnoreListedPayloadV1 struct {
	Guilds   []shared.GuildID   `json:"guilds"`
	Channels []shared.ChannelID `json:"channels"`
}

type IgnoreListFailedPayloadV1 struct {
	Reason string `json:"reason"`
}

type WhitelistAddRequestedPayloadV1 struct {
	RequesterID shared.UserID               `json:"requester_id"`
	Kind        errwatchtypes.WhitelistKind `json:"kind"`
	Value       string                      `json:"value"`
}

type WhitelistAddedPayloadV1 struct {
	Kind  errwatchtypes.WhitelistKind `json:"kind"`
	Value string                      `json:"value"`
}

type WhitelistAddFailedPayloadV1 struct {
	Kind   errwatchtypes.WhitelistKind `json:"kind"`
	Value  string                      `json:"value"`
	Reason string                      `json:"reason"`
}

type WhitelistRemoveRequestedPayloadV1 struct {
	RequesterID shared.UserID               `json:"requester_id"`
	Kind        errwatchtypes.WhitelistKind `json:"kind"`
	Value       string                      `json:"value"`
}

type WhitelistRemovedPayloadV1 struct {
	Kind  errwatchtypes.WhitelistKind `json:"kind"`
	Value string                      `json:"value"`
}

type WhitelistRemoveFailedPayloadV1 struct {
	Kind   errwatchtypes.WhitelistKind `json:"kind"`
	Value  string                      `json:"value"`
	Reason string                      `json:"reason"`
}

type WhitelistListRequestedPayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id"`
}

type WhitelistListedPayloadV1 struct {
	Users    []shared.UserID `json:"users"`
	Commands []string        `json:"commands"`
	Cogs     []string        `json:"cogs"`
}

type WhitelistListFailedPayloadV1 struct {
	Reason string `json:"reason"`
}

type WarnMessageSetRequestedPayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id"`
	// Message is the new warning text. Empty resets to the default.
	Message string `json:"message"`
}

type WarnMessageSetPayloadV1 struct {
	Message string `json:"message"`
	Reset   bool   `json:"reset"`
}

type WarnMessageSetFailedPayloadV1 struct {
	Reason string `json:"reason"`
}

type WarnMessageTogglePayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id"`
}

type WarnMessageToggledPayloadV1 struct {
	Enabled bool `json:"enabled"`
}

type WarnMessageToggleFailedPayloadV1 struct {
	Reason string `json:"reason"`
}

type SettingsRetrievalRequestedPayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id"`
}

// SettingsRetrievedPayloadV1 mirrors the original settings overview: the
// warning message text is only included while message sending is enabled.
type SettingsRetrievedPayloadV1 struct {
	Enabled            bool   `json:"enabled"`
	Threshold          int    `json:"threshold"`
	ClearUsageDaily    bool   `json:"clear_usage_daily"`
	WarnMessageEnabled bool   `json:"warn_message_enabled"`
	WarnMessage        string `json:"warn_message,omitempty"`
}

type SettingsRetrievalFailedPayloadV1 struct {
	Reason string `json:"reason"`
}

// UsageClearRequestedPayloadV1 requests a wipe of all tracked error counts.
// Scheduled requests come from the daily job and respect the clear-usage
// setting; owner requests always clear.
type UsageClearRequestedPayloadV1 struct {
	RequesterID shared.UserID `json:"requester_id,omitempty"`
	Scheduled   bool          `json:"scheduled"`
}

type UsageClearedPayloadV1 struct {
	Skipped bool `json:"skipped"`
}

type UsageClearFailedPayloadV1 struct {
	Reason string `json:"reason"`
}
