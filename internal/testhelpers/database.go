package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/safebite/backend/internal/models"
)

// SetupTestDatabase creates an isolated in-memory SQLite database with the
// full schema migrated. Each call returns a fresh instance.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.PatientProfile{},
		&models.Allergen{},
		&models.FoodAnalysis{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
