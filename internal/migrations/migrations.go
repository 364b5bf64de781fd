// Package migrations holds the database schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed *.sql
var embedMigrations embed.FS

const (
	driverName = "pgx"
	dir        = "."
)

// Up applies every pending migration.
func Up(ctx context.Context, logger zerolog.Logger, dsn string) error {
	return run(ctx, logger, dsn, func(ctx context.Context, db *sql.DB) error {
		return goose.UpContext(ctx, db, dir)
	})
}

// Down rolls back the latest applied migration.
func Down(ctx context.Context, logger zerolog.Logger, dsn string) error {
	return run(ctx, logger, dsn, func(ctx context.Context, db *sql.DB) error {
		return goose.DownContext(ctx, db, dir)
	})
}

// Status logs the state of each migration.
func Status(ctx context.Context, logger zerolog.Logger, dsn string) error {
	return run(ctx, logger, dsn, func(ctx context.Context, db *sql.DB) error {
		return goose.StatusContext(ctx, db, dir)
	})
}

func run(ctx context.Context, logger zerolog.Logger, dsn string, fn func(context.Context, *sql.DB) error) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{logger: logger})

	db, err := goose.OpenDBWithDriver(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open migration db: %w", err)
	}
	defer db.Close()

	err = fn(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// gooseLogger routes goose output into zerolog.
type gooseLogger struct {
	logger zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info().Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Fatal().Msgf(format, v...)
}
