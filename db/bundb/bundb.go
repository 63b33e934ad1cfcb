package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	errwatchdb "github.com/Cedar-Hollow-Club/errwatch-bot/app/modules/errwatch/infrastructure/repositories"
	"github.com/Cedar-Hollow-Club/errwatch-bot/config"
)

// DBService bundles the module repositories over one bun connection.
type DBService struct {
	ErrwatchDB errwatchdb.Repository
	db         *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService initializes a new DBService with the provided Postgres configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(&errwatchdb.Settings{})
	db.RegisterModel(&errwatchdb.UserErrorCount{})
	db.RegisterModel(&errwatchdb.BlacklistRecord{})

	return &DBService{
		ErrwatchDB: &errwatchdb.RepositoryImpl{DB: db},
		db:         db,
	}, nil
}

// Close releases the database connection pool.
func (dbService *DBService) Close() error {
	return dbService.db.Close()
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
