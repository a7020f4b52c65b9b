package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sunseekerapp/sunseeker-backend/internal/models"
	"github.com/sunseekerapp/sunseeker-backend/internal/store"
	"github.com/sunseekerapp/sunseeker-backend/internal/token"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or every pooled conn gets its own :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Post{},
		&models.Comment{},
	))
	return db
}

func newTestTokens() *token.Manager {
	return token.NewManager("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
}

func newTestAuth(t *testing.T) (*AuthService, *store.GormStore) {
	t.Helper()
	credStore := store.NewGormStore(newTestDB(t))
	return NewAuthService(credStore, newTestTokens(), 168*time.Hour), credStore
}
