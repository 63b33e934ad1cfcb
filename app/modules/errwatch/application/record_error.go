package errwatchservice

import (
	"context"
	"log/slog"
	"time"

	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// RecordCommandError runs a reported command error through the watcher. Most
// reports are skipped by a filter; the rest bump the user's counter for that
// command and may trip the blacklist threshold. The success payload is always
// an ErrorVerdict describing what the handler should publish.
func (s *ErrwatchService) RecordCommandError(ctx context.Context, report *errwatchtypes.CommandErrorReport) (shared.OperationResult, error) {
	if report == nil {
		return shared.OperationResult{}, ErrNilReport
	}

	return s.withTelemetry(ctx, "RecordCommandError", func(ctx context.Context) (shared.OperationResult, error) {
		verdict := &errwatchtypes.ErrorVerdict{
			UserID:      report.UserID,
			ChannelID:   report.ChannelID,
			CommandName: report.CommandName,
		}
		skip := func(reason string) (shared.OperationResult, error) {
			verdict.Skipped = true
			verdict.SkipReason = reason
			return shared.SuccessResult(verdict), nil
		}

		// Errors consumed by a command or cog error handler are not ours.
		if report.HandledElsewhere {
			return skip("handled by a command or cog error handler")
		}
		if !report.InvokeError {
			return skip("not a command invocation error")
		}
		if report.CommandName == "" || report.CogName == "" {
			return skip("command does not belong to a cog")
		}

		settings, err := s.loadSettings(ctx)
		if err != nil {
			return shared.OperationResult{}, err
		}

		if !settings.Enabled {
			return skip("watcher disabled")
		}
		if report.InvokerIsOwner {
			return skip("invoker is a bot owner")
		}
		if report.GuildID != "" && settings.GuildIgnored(report.GuildID) {
			return skip("guild ignored")
		}
		if report.ChannelID != "" && settings.ChannelIgnored(report.ChannelID) {
			return skip("channel ignored")
		}
		if settings.CommandWhitelisted(report.CommandName) {
			return skip("command whitelisted")
		}
		if settings.CogWhitelisted(report.CogName) {
			return skip("cog whitelisted")
		}
		if settings.UserWhitelisted(report.UserID) {
			return skip("user whitelisted")
		}

		blacklisted, err := s.repo.IsBlacklisted(ctx, report.UserID)
		if err != nil {
			return shared.OperationResult{}, err
		}
		if blacklisted {
			return skip("user already blacklisted")
		}

		s.metrics.RecordCommandError(ctx, report.CommandName)

		count, snapshot := s.bump(report.UserID, report.CommandName)
		if err := s.repo.SaveUserCounts(ctx, report.UserID, snapshot); err != nil {
			return shared.OperationResult{}, err
		}
		verdict.Count = count

		if settings.WarnMessageEnabled {
			verdict.Warn = true
			verdict.WarnMessage = settings.WarnMessage
		}

		if count >= settings.Threshold {
			record := &errwatchtypes.BlacklistRecord{
				UserID:      report.UserID,
				CommandName: report.CommandName,
				ErrorCount:  count,
				CreatedAt:   time.Now(),
			}
			if err := s.repo.AddBlacklistRecord(ctx, record); err != nil {
				return shared.OperationResult{}, err
			}
			verdict.Blacklisted = true
			s.metrics.RecordUserBlacklisted(ctx)
			s.logger.InfoContext(ctx, "User blacklisted after repeated command errors",
				slog.String("user_id", report.UserID.String()),
				slog.String("command", report.CommandName),
				slog.Int("count", count),
			)
		}

		return shared.SuccessResult(verdict), nil
	})
}
