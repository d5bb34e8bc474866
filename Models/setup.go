package Models

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "hearth.db"
	}

	connection, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}
	DB = connection

	if err := DB.AutoMigrate(
		&Task{},
		&ResetRunLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}
