package config

import (
	"fmt"
	"log"
	"os"

	"tourpack/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func buildDSN() string {
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslmode)
}

func ConnectDB() {
	var err error
	dsn := buildDSN()

	// TranslateError maps driver duplicate-key errors to gorm.ErrDuplicatedKey,
	// which the controllers rely on for conflict responses.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	if err := MigrateModels(DB); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateModels creates or updates the schema for the package aggregate.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Package{},
		&models.Gallery{},
		&models.Highlight{},
		&models.ItineraryDay{},
		&models.Activity{},
		&models.Meal{},
		&models.Inclusion{},
		&models.Exclusion{},
		&models.AvailableDate{},
		&models.Review{},
		&models.FAQ{},
	)
}
