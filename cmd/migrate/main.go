package main

import (
	"flag"
	"log/slog"
	"os"

	"grainauth/config"
	"grainauth/internal/errors"
	logs "grainauth/internal/infra/log"
	"grainauth/internal/infra/persistence/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	command := flag.String("cmd", "up", "Migration command: up|down|version|force")
	steps := flag.Int("steps", 1, "Number of migrations to roll back with -cmd=down")
	version := flag.Int("version", -1, "Version to record with -cmd=force")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger, *command, *steps, *version); err != nil {
		logger.Error("Migration failed", slog.String("cmd", *command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, command string, steps, version int) error {
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	m, err := postgres.NewMigrator(sqlDB)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		if steps <= 0 {
			return errors.Errorf("steps must be positive, got %d", steps)
		}
		err = m.Steps(-steps)
	case "force":
		if version < 0 {
			return errors.New("force requires -version")
		}
		err = m.Force(version)
	case "version":
	default:
		return errors.Errorf("unknown command %q", command)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.WithStack(err)
	}

	current, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "read migration version")
	}
	logger.Info("Migration finished",
		slog.String("cmd", command),
		slog.Uint64("version", uint64(current)),
		slog.Bool("dirty", dirty),
	)

	return nil
}
