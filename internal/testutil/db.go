package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"roamio/internal/models/db_models"
)

// NewGormDB opens an isolated in-memory sqlite database with the full
// schema migrated. The pool is capped at one connection so every query sees
// the same in-memory database.
func NewGormDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&db_models.User{},
		&db_models.Trip{},
		&db_models.Destination{},
	))

	return db
}
