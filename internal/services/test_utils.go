package services

import (
	"os"
	"testing"

	"sharecase/internal/database"
	"sharecase/internal/models"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Set test environment variables
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "postgres")
	os.Setenv("DB_PASSWORD", "")
	os.Setenv("DB_NAME", "sharecase_test")
	os.Setenv("DB_SSLMODE", "disable")

	config := database.LoadConfig()

	if err := database.Connect(config); err != nil {
		t.Skipf("Skipping test - PostgreSQL test database not available: %v", err)
	}

	db := database.DB

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	// Clean up any existing test data
	db.Exec("DELETE FROM activities")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM project_collaborators")
	db.Exec("DELETE FROM user_follows")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM users")

	return db
}
