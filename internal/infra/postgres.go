package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbm "solace/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
}

func migrate(db *gorm.DB) error {
	// The embedding column needs the extension before AutoMigrate sees the table.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("pgvector extension unavailable, similarity search disabled: %v", err)
	}

	return db.AutoMigrate(
		&dbm.JournalEntry{},
		&dbm.UserProgressProfile{},
		&dbm.BadgeDefinition{},
		&dbm.BadgeProgress{},
		&dbm.Subscription{},
		&dbm.EntryEmbedding{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
