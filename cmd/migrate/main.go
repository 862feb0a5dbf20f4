// Command migrate applies, rolls back or lists the database migrations
// without starting the server.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is up. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storylingo-backend/internal/app"
	"github.com/heartmarshall/storylingo-backend/internal/config"
	"github.com/heartmarshall/storylingo-backend/migrations"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	switch command {
	case "up":
		err = postgres.Migrate(ctx, pool, migrations.FS, logger)
	case "down":
		err = postgres.Rollback(ctx, pool, migrations.FS, logger)
	case "status":
		err = postgres.LogMigrationStatus(ctx, pool, migrations.FS, logger)
	default:
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
		pool.Close()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("migrate completed", slog.String("command", command))
}
