package errwatchdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	errwatchtypes "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/domain/types"
	"github.com/Cedar-Hollow-Club/errwatch-bot/app/shared"
)

// RepositoryImpl implements Repository on a bun.DB.
type RepositoryImpl struct {
	DB *bun.DB
}

var _ Repository = (*RepositoryImpl)(nil)

func (r *RepositoryImpl) GetSettings(ctx context.Context) (*errwatchtypes.Settings, error) {
	var row Settings
	err := r.DB.NewSelect().Model(&row).Where("id = ?", settingsRowID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainSettings(&row), nil
}

func (r *RepositoryImpl) SaveSettings(ctx context.Context, settings *errwatchtypes.Settings) error {
	row := toSettingsRow(settings)
	row.UpdatedAt = time.Now()

	_, err := r.DB.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("enabled = EXCLUDED.enabled").
		Set("threshold = EXCLUDED.threshold").
		Set("clear_usage_daily = EXCLUDED.clear_usage_daily").
		Set("ignored_guilds = EXCLUDED.ignored_guilds").
		Set("ignored_channels = EXCLUDED.ignored_channels").
		Set("whitelisted_users = EXCLUDED.whitelisted_users").
		Set("whitelisted_commands = EXCLUDED.whitelisted_commands").
		Set("whitelisted_cogs = EXCLUDED.whitelisted_cogs").
		Set("warn_message = EXCLUDED.warn_message").
		Set("warn_message_enabled = EXCLUDED.warn_message_enabled").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *RepositoryImpl) AllUserCounts(ctx context.Context) (map[shared.UserID]map[string]int, error) {
	var rows []UserErrorCount
	if err := r.DB.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, err
	}

	counts := make(map[shared.UserID]map[string]int, len(rows))
	for _, row := range rows {
		if len(row.Counts) == 0 {
			continue
		}
		counts[row.UserID] = row.Counts
	}
	return counts, nil
}

func (r *RepositoryImpl) SaveUserCounts(ctx context.Context, userID shared.UserID, counts map[string]int) error {
	row := &UserErrorCount{
		UserID:    userID,
		Counts:    counts,
		UpdatedAt: time.Now(),
	}
	_, err := r.DB.NewInsert().
		Model(row).
		On("CONFLICT (user_id) DO UPDATE").
		Set("counts = EXCLUDED.counts").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *RepositoryImpl) ClearAllUserCounts(ctx context.Context) error {
	_, err := r.DB.NewDelete().
		Model((*UserErrorCount)(nil)).
		Where("1 = 1").
		Exec(ctx)
	return err
}

func (r *RepositoryImpl) IsBlacklisted(ctx context.Context, userID shared.UserID) (bool, error) {
	exists, err := r.DB.NewSelect().
		Model((*BlacklistRecord)(nil)).
		Where("user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *RepositoryImpl) AddBlacklistRecord(ctx context.Context, record *errwatchtypes.BlacklistRecord) error {
	row := &BlacklistRecord{
		UserID:      record.UserID,
		CommandName: record.CommandName,
		ErrorCount:  record.ErrorCount,
		CreatedAt:   record.CreatedAt,
	}
	_, err := r.DB.NewInsert().
		Model(row).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	return err
}
