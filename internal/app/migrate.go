package app

import (
	"context"

	"github.com/adanyl0v/go-todo-catalog/internal/config"
	"github.com/adanyl0v/go-todo-catalog/internal/migrations"
)

// MustMigratePostgres applies pending migrations when
// POSTGRES_AUTO_MIGRATE is set.
func MustMigratePostgres() {
	cfg := config.Global().Postgres
	if !cfg.AutoMigrate {
		globalLogger.Debug().Msg("auto migration disabled")
		return
	}

	err := migrations.Up(context.Background(), globalLogger, cfg.URL())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to migrate postgres")
		panic(err)
	}
	globalLogger.Info().Msg("migrated postgres")
}
