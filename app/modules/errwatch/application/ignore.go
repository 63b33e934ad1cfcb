package errwatchservice

import (
	"context"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// AddIgnore puts a guild or channel on the ignore list. Errors raised there
// no longer count against users.
func (s *ErrwatchService) AddIgnore(ctx context.Context, kind errwatchtypes.IgnoreKind, targetID string) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "AddIgnore", func(ctx context.Context) (shared.OperationResult, error) {
		if !kind.Valid() {
			return ignoreAddFailure(kind, targetID, ErrUnknownIgnoreKind), nil
		}
		if targetID == "" {
			return ignoreAddFailure(kind, targetID, ErrEmptyTarget), nil
		}

		settings, err := s.loadSettings(ctx)
		if err != nil {
			return ignoreAddFailure(kind, targetID, err), err
		}

		switch kind {
		case errwatchtypes.IgnoreGuild:
			if settings.GuildIgnored(shared.GuildID(targetID)) {
				return ignoreAddFailure(kind, targetID, ErrAlreadyIgnored), nil
			}
			settings.IgnoredGuilds = append(settings.IgnoredGuilds, shared.GuildID(targetID))
		case errwatchtypes.IgnoreChannel:
			if settings.ChannelIgnored(shared.ChannelID(targetID)) {
				return ignoreAddFailure(kind, targetID, ErrAlreadyIgnored), nil
			}
			settings.IgnoredChannels = append(settings.IgnoredChannels, shared.ChannelID(targetID))
		}

		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return ignoreAddFailure(kind, targetID, err), err
		}

		return shared.SuccessResult(&errwatchevents.IgnoreAddedPayloadV1{
			Kind:     kind,
			TargetID: targetID,
		}), nil
	})
}

// RemoveIgnore takes a guild or channel off the ignore list.
func (s *ErrwatchService) RemoveIgnore(ctx context.Context, kind errwatchtypes.IgnoreKind, targetID string) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "RemoveIgnore", func(ctx context.Context) (shared.OperationResult, error) {
		if !kind.Valid() {
			return ignoreRemoveFailure(kind, targetID, ErrUnknownIgnoreKind), nil
		}
		if targetID == "" {
			return ignoreRemoveFailure(kind, targetID, ErrEmptyTarget), nil
		}

		settings, err := s.loadSettings(ctx)
		if err != nil {
			return ignoreRemoveFailure(kind, targetID, err), err
		}

		switch kind {
		case errwatchtypes.IgnoreGuild:
			if !settings.GuildIgnored(shared.GuildID(targetID)) {
				return ignoreRemoveFailure(kind, targetID, ErrNotIgnored), nil
			}
			settings.IgnoredGuilds = removeElement(settings.IgnoredGuilds, shared.GuildID(targetID))
		case errwatchtypes.IgnoreChannel:
			if !settings.ChannelIgnored(shared.ChannelID(targetID)) {
				return ignoreRemoveFailure(kind, targetID, ErrNotIgnored), nil
			}
			settings.IgnoredChannels = removeElement(settings.IgnoredChannels, shared.ChannelID(targetID))
		}

		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return ignoreRemoveFailure(kind, targetID, err), err
		}

		return shared.SuccessResult(&errwatchevents.IgnoreRemovedPayloadV1{
			Kind:     kind,
			TargetID: targetID,
		}), nil
	})
}

// ListIgnores returns both ignore lists.
func (s *ErrwatchService) ListIgnores(ctx context.Context) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "ListIgnores", func(ctx context.Context) (shared.OperationResult, error) {
		settings, err := s.loadSettings(ctx)
		if err != nil {
			return shared.FailureResult(&errwatchevents.IgnoreListFailedPayloadV1{
				Reason: err.Error(),
			}), err
		}

		return shared.SuccessResult(&errwatchevents.IgnoreListedPayloadV1{
			Guilds:   settings.IgnoredGuilds,
			Channels: settings.IgnoredChannels,
		}), nil
	})
}

func ignoreAddFailure(kind errwatchtypes.IgnoreKind, targetID string, err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.IgnoreAddFailedPayloadV1{
		Kind:     kind,
		TargetID: targetID,
		Reason:   err.Error(),
	})
}

func ignoreRemoveFailure(kind errwatchtypes.IgnoreKind, targetID string, err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.IgnoreRemoveFailedPayloadV1{
		Kind:     kind,
		TargetID: targetID,
		Reason:   err.Error(),
	})
}

// removeElement returns the slice without the first occurrence of v.
func removeElement[T comparable](list []T, v T) []T {
	out := make([]T, 0, len(list))
	removed := false
	for _, item := range list {
		if !removed && item == v {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out
}
