package errwatchservice

import (
	"context"

	errwatchevents "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/events"
	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// AddWhitelist exempts a user, command or cog from the error watcher.
func (s *ErrwatchService) AddWhitelist(ctx context.Context, kind errwatchtypes.WhitelistKind, value string) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "AddWhitelist", func(ctx context.Context) (shared.OperationResult, error) {
		if !kind.Valid() {
			return whitelistAddFailure(kind, value, ErrUnknownWhitelistKind), nil
		}
		if value == "" {
			return whitelistAddFailure(kind, value, ErrEmptyTarget), nil
		}

		settings, err := s.loadSettings(ctx)
		if err != nil {
			return whitelistAddFailure(kind, value, err), err
		}

		switch kind {
		case errwatchtypes.WhitelistUser:
			if settings.UserWhitelisted(shared.UserID(value)) {
				return whitelistAddFailure(kind, value, ErrAlreadyWhitelisted), nil
			}
			settings.WhitelistedUsers = append(settings.WhitelistedUsers, shared.UserID(value))
		case errwatchtypes.WhitelistCommand:
			if settings.CommandWhitelisted(value) {
				return whitelistAddFailure(kind, value, ErrAlreadyWhitelisted), nil
			}
			settings.WhitelistedCommands = append(settings.WhitelistedCommands, value)
		case errwatchtypes.WhitelistCog:
			if settings.CogWhitelisted(value) {
				return whitelistAddFailure(kind, value, ErrAlreadyWhitelisted), nil
			}
			settings.WhitelistedCogs = append(settings.WhitelistedCogs, value)
		}

		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return whitelistAddFailure(kind, value, err), err
		}

		return shared.SuccessResult(&errwatchevents.WhitelistAddedPayloadV1{
			Kind:  kind,
			Value: value,
		}), nil
	})
}

// RemoveWhitelist removes a user, command or cog exemption.
func (s *ErrwatchService) RemoveWhitelist(ctx context.Context, kind errwatchtypes.WhitelistKind, value string) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "RemoveWhitelist", func(ctx context.Context) (shared.OperationResult, error) {
		if !kind.Valid() {
			return whitelistRemoveFailure(kind, value, ErrUnknownWhitelistKind), nil
		}
		if value == "" {
			return whitelistRemoveFailure(kind, value, ErrEmptyTarget), nil
		}

		settings, err := s.loadSettings(ctx)
		if err != nil {
			return whitelistRemoveFailure(kind, value, err), err
		}

		switch kind {
		case errwatchtypes.WhitelistUser:
			if !settings.UserWhitelisted(shared.UserID(value)) {
				return whitelistRemoveFailure(kind, value, ErrNotWhitelisted), nil
			}
			settings.WhitelistedUsers = removeElement(settings.WhitelistedUsers, shared.UserID(value))
		case errwatchtypes.WhitelistCommand:
			if !settings.CommandWhitelisted(value) {
				return whitelistRemoveFailure(kind, value, ErrNotWhitelisted), nil
			}
			settings.WhitelistedCommands = removeElement(settings.WhitelistedCommands, value)
		case errwatchtypes.WhitelistCog:
			if !settings.CogWhitelisted(value) {
				return whitelistRemoveFailure(kind, value, ErrNotWhitelisted), nil
			}
			settings.WhitelistedCogs = removeElement(settings.WhitelistedCogs, value)
		}

		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return whitelistRemoveFailure(kind, value, err), err
		}

		return shared.SuccessResult(&errwatchevents.WhitelistRemovedPayloadV1{
			Kind:  kind,
			Value: value,
		}), nil
	})
}

// ListWhitelist returns all three whitelists.
func (s *ErrwatchService) ListWhitelist(ctx context.Context) (shared.OperationResult, error) {
	return s.withTelemetry(ctx, "ListWhitelist", func(ctx context.Context) (shared.OperationResult, error) {
		settings, err := s.loadSettings(ctx)
		if err != nil {
			return shared.FailureResult(&errwatchevents.WhitelistListFailedPayloadV1{
				Reason: err.Error(),
			}), err
		}

		return shared.SuccessResult(&errwatchevents.WhitelistListedPayloadV1{
			Users:    settings.WhitelistedUsers,
			Commands: settings.WhitelistedCommands,
			Cogs:     settings.WhitelistedCogs,
		}), nil
	})
}

func whitelistAddFailure(kind errwatchtypes.WhitelistKind, value string, err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.WhitelistAddFailedPayloadV1{
		Kind:   kind,
		Value:  value,
		Reason: err.Error(),
	})
}

func whitelistRemoveFailure(kind errwatchtypes.WhitelistKind, value string, err error) shared.OperationResult {
	return shared.FailureResult(&errwatchevents.WhitelistRemoveFailedPayloadV1{
		Kind:   kind,
		Value:  value,
		Reason: err.Error(),
	})
}
