package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/quantra/financial-data-service/pkg/config"
	"github.com/quantra/financial-data-service/pkg/migration"
	"github.com/quantra/financial-data-service/pkg/postgresql"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer client.Close()

	runner := migration.NewRunner(ctx, client, migration.Config{
		MigrationDir: "migrations",
	})

	if err := runner.EnsureMigrationTable(); err != nil {
		log.Fatalf("Failed to ensure migration table: %v", err)
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	steps := 0
	if len(os.Args) > 2 {
		steps, err = strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("Invalid steps argument: %v", err)
		}
	}

	switch direction {
	case "up":
		err = runner.MigrateUp(steps)
	case "down":
		if steps == 0 {
			steps = 1
		}
		err = runner.MigrateDown(steps)
	default:
		log.Fatalf("Unknown direction %q, expected up or down", direction)
	}

	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}
