package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the application database and returns the handle.
// When DATABASE_URL is set it connects to PostgreSQL, otherwise it opens
// (creating if needed) the sqlite file at DBPath. The caller owns the
// handle and passes it down; nothing in this package keeps a global copy.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Println("Connected to PostgreSQL database")
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.DBPath, err)
	}
	log.Printf("Connected to SQLite database at %s", cfg.DBPath)
	return db, nil
}

// CloseDatabase releases the underlying connection. Called on shutdown so
// the handle's lifetime is owned by the process entry point.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
