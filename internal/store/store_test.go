package store

import (
	"testing"

	"github.com/circuitlab-dev/circuitlab/db"
	"github.com/circuitlab-dev/circuitlab/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global handle at a fresh in-memory database. A single
// connection keeps the memory database alive and serializes statements the way
// a connection-per-request server would against one session.
func setupTestDB(t *testing.T) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db.DB = gormDB
	require.NoError(t, db.MigrateDatabase())

	t.Cleanup(func() {
		_ = sqlDB.Close()
		db.DB = nil
	})
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()

	user, err := CreateUser(email, "Test User", "password123")
	require.NoError(t, err)

	return user
}

func createTestChallenge(t *testing.T, title string) *models.Challenge {
	t.Helper()

	challenge, err := CreateChallenge(title, "a description", "electric", 1, datatypes.JSON(`{"bulbs": 1}`))
	require.NoError(t, err)

	return challenge
}
