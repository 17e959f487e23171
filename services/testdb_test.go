package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"diettracker/config"
	"diettracker/models"
	"diettracker/services"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

// registerUser creates a user directly through the auth service.
func registerUser(t *testing.T, db *gorm.DB, email, password, name string) *models.User {
	t.Helper()
	user, err := services.NewAuthService(db).Register(email, password, name)
	require.NoError(t, err)
	return user
}

// seedCategories fills the default catalog and returns it keyed by name.
func seedCategories(t *testing.T, db *gorm.DB) map[string]models.FoodCategory {
	t.Helper()
	svc := services.NewCategoryService(db)
	require.NoError(t, svc.Seed())

	categories, err := svc.List()
	require.NoError(t, err)

	byName := make(map[string]models.FoodCategory, len(categories))
	for _, cat := range categories {
		byName[cat.Name] = cat
	}
	return byName
}
