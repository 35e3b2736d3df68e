package store_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studyhub/backend/internal/models"
	"studyhub/backend/internal/store"
)

// newTestStore opens a store against the database named by
// TEST_DATABASE_URL and resets its tables. Tests are skipped when no test
// database is configured.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lobby{},
		&models.LobbyMembership{},
		&models.Post{},
		&models.Comment{},
	))

	err = db.Exec(
		"TRUNCATE TABLE course_users, lobby_memberships, comments, posts, lobbies, courses, users RESTART IDENTITY",
	).Error
	require.NoError(t, err)

	return store.New(db)
}
