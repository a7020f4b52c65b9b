package store

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sunseekerapp/sunseeker-backend/internal/models"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or every pooled conn gets its own :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RefreshToken{}))
	return NewGormStore(db)
}

func createTestUser(t *testing.T, s *GormStore) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    uuid.NewString() + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, s.CreateUser(user))
	return user
}

func TestUserLookup(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	byEmail, err := s.UserByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := s.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = s.UserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UserByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendContainsRemove(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)
	expiry := time.Now().Add(time.Hour)

	require.NoError(t, s.AppendToken(user.ID, "tok-1", expiry))

	ok, err := s.ContainsToken(user.ID, "tok-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ContainsToken(user.ID, "tok-2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.RemoveToken(user.ID, "tok-1"))
	ok, err = s.ContainsToken(user.ID, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// removing again is a no-op
	require.NoError(t, s.RemoveToken(user.ID, "tok-1"))
}

func TestRotateToken(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)
	expiry := time.Now().Add(time.Hour)

	require.NoError(t, s.AppendToken(user.ID, "old", expiry))
	require.NoError(t, s.RotateToken(user.ID, "old", "new", expiry))

	ok, err := s.ContainsToken(user.ID, "old")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.ContainsToken(user.ID, "new")
	require.NoError(t, err)
	assert.True(t, ok)

	count, err := s.TokenCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "rotation swaps, it does not grow the set")
}

func TestRotateTokenMissingOld(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)
	expiry := time.Now().Add(time.Hour)

	err := s.RotateToken(user.ID, "never-stored", "new", expiry)
	assert.ErrorIs(t, err, ErrNotFound)

	// failed rotation must not leave the new token behind
	ok, err := s.ContainsToken(user.ID, "new")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRevokeAll(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)
	expiry := time.Now().Add(time.Hour)

	require.NoError(t, s.AppendToken(user.ID, "tok-1", expiry))
	require.NoError(t, s.AppendToken(user.ID, "tok-2", expiry))
	require.NoError(t, s.AppendToken(user.ID, "tok-3", expiry))

	require.NoError(t, s.RevokeAll(user.ID))

	count, err := s.TokenCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestUpdatePassword(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	require.NoError(t, s.UpdatePassword(user.ID, "new-hash"))

	updated, err := s.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.Password)

	assert.ErrorIs(t, s.UpdatePassword(uuid.New(), "x"), ErrNotFound)
}
