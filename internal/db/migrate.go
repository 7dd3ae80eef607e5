package db

import (
	"rental_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	return db.AutoMigrate(&domain.User{}, &domain.Equipment{})
}

// Reset drops both tables and recreates them empty. Demo mode only: every row
// is lost. Kept behind the DB_RESET config flag.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&domain.User{}, &domain.Equipment{}); err != nil {
		return err // Return error if dropping fails
	}
	logrus.Warn("Dropped all tables (DB_RESET)") // Destructive step is worth a warning
	return Migrate(db)                           // Recreate empty tables
}
