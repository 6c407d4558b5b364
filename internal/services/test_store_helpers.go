package services

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/harshithareddy1810/Med-Tracker/internal/db"
	"github.com/harshithareddy1810/Med-Tracker/internal/models"
)

func openTestDatabase(t *testing.T) (*gorm.DB, *db.Repositories) {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database, db.NewRepositories(database)
}

func seedUser(t *testing.T, database *gorm.DB, mobileNumber string) models.User {
	t.Helper()
	user := models.User{MobileNumber: mobileNumber, Timezone: "UTC"}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
