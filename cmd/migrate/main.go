package main

import (
	"log"

	"ai-notes-hub/internal/config"
	"ai-notes-hub/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate for notes...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Migration completed")
}
