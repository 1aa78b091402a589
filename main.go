package main

import (
	"log"

	"netbl/internal/app"
	"netbl/internal/config"

	_ "netbl/internal/metrics"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	runMigration(cfg.PostgresURL())

	myApp := app.NewApplication(cfg)
	myApp.Run()
}

func runMigration(dsn string) {
	migration, err := migrate.New("file://db/migration", dsn)
	if err != nil {
		log.Fatalf("Failed to initialize migration: %v", err)
	}
	defer migration.Close()

	if err := migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Println("Migrations applied")
}
