package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	errwatchdb "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating errwatch tables...")
			if _, err := db.NewCreateTable().Model((*errwatchdb.Settings)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewCreateTable().Model((*errwatchdb.UserErrorCount)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewCreateTable().Model((*errwatchdb.BlacklistRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("errwatch tables created successfully!")
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping errwatch tables...")
			if _, err := db.NewDropTable().Model((*errwatchdb.BlacklistRecord)(nil)).IfExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewDropTable().Model((*errwatchdb.UserErrorCount)(nil)).IfExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewDropTable().Model((*errwatchdb.Settings)(nil)).IfExists().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("errwatch tables dropped successfully!")
			return nil
		},
	)
}
