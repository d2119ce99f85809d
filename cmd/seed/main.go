// Command seed migrates the configured database and loads the Daejeon demo
// places, events and parent account. It is idempotent.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	userstore "ainadeul/internal/auth/store/user"
	eventstore "ainadeul/internal/event/store"
	placestore "ainadeul/internal/place/store"
	"ainadeul/internal/platform/config"
	"ainadeul/internal/platform/database"
	"ainadeul/internal/platform/logger"
	"ainadeul/internal/seeder"
	"ainadeul/migrations"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "Apply migrations without loading demo data")
	flag.Parse()

	envErr := config.LoadDotEnv(config.EnvFile())
	cfg := config.FromEnv()
	log := logger.New(cfg.Environment)
	if envErr != nil {
		log.Warn("ignoring env file", "error", envErr)
	}

	if err := run(context.Background(), cfg, *migrateOnly, log); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, migrateOnly bool, log *slog.Logger) error {
	pool, err := database.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if pool == nil {
		return errors.New("DATABASE_URL is required")
	}
	defer pool.Close() //nolint:errcheck // process exits right after

	if err := database.Migrate(ctx, pool.DB(), migrations.FS, log); err != nil {
		return err
	}
	if migrateOnly {
		return nil
	}

	db := pool.DB()
	return seeder.New(userstore.NewPostgres(db), placestore.NewPostgres(db), eventstore.NewPostgres(db), log).SeedAll(ctx)
}
