package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunseekerapp/sunseeker-backend/internal/store"
	"github.com/sunseekerapp/sunseeker-backend/internal/token"
)

func TestRegister(t *testing.T) {
	svc, credStore := newTestAuth(t)

	user, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw123456", user.Password, "password must be stored hashed")

	count, err := credStore.TokenCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count, "registration starts with no session")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.Register("alice2", "alice@example.com", "other-pw")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register("bob", "bob@example.com", "pw123456")
	assert.NoError(t, err)
}

func TestLoginStoresRefreshToken(t *testing.T) {
	svc, credStore := newTestAuth(t)

	user, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)

	pair, loggedIn, err := svc.Login("alice@example.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	active, err := credStore.ContainsToken(user.ID, pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, active, "refresh token must land in the persisted set")
}

func TestLoginGenericError(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login("alice@example.com", "wrong")
	_, _, unknownEmail := svc.Login("nobody@example.com", "pw123456")

	// both failure modes surface the same error, no account enumeration
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestRefreshRotates(t *testing.T) {
	svc, credStore := newTestAuth(t)

	user, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)
	pair, _, err := svc.Login("alice@example.com", "pw123456")
	require.NoError(t, err)

	next, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	old, err := credStore.ContainsToken(user.ID, pair.RefreshToken)
	require.NoError(t, err)
	assert.False(t, old, "consumed token must leave the set")

	fresh, err := credStore.ContainsToken(user.ID, next.RefreshToken)
	require.NoError(t, err)
	assert.True(t, fresh)

	count, err := credStore.TokenCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "rotation swaps, it does not grow the set")
}

func TestRefreshReuseRevokesAllSessions(t *testing.T) {
	svc, credStore := newTestAuth(t)

	user, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)

	// two concurrent devices
	first, _, err := svc.Login("alice@example.com", "pw123456")
	require.NoError(t, err)
	_, _, err = svc.Login("alice@example.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.Refresh(first.RefreshToken)
	require.NoError(t, err)

	// replaying the consumed token nukes every session
	_, err = svc.Refresh(first.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenReuse)

	count, err := credStore.TokenCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestRefreshMissingToken(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.Refresh("")
	assert.ErrorIs(t, err, ErrTokenRequired)
}

func TestRefreshInvalidToken(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.Refresh("garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshUnknownUser(t *testing.T) {
	svc, _ := newTestAuth(t)

	// signature-valid token for a user that was never created
	pair, err := newTestTokens().Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogoutRemovesToken(t *testing.T) {
	svc, credStore := newTestAuth(t)

	user, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)
	pair, _, err := svc.Login("alice@example.com", "pw123456")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(pair.RefreshToken))

	count, err := credStore.TokenCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// logging out again is still a success
	assert.NoError(t, svc.Logout(pair.RefreshToken))
}

func TestLogoutIsLenient(t *testing.T) {
	svc, _ := newTestAuth(t)

	// unverifiable token
	assert.NoError(t, svc.Logout("garbage"))

	// signature-valid token for a nonexistent user
	pair, err := newTestTokens().Issue(uuid.New())
	require.NoError(t, err)
	assert.NoError(t, svc.Logout(pair.RefreshToken))

	// only a missing token is an error
	assert.ErrorIs(t, svc.Logout(""), ErrTokenRequired)
}

func TestUpdatePasswordRevokesSessions(t *testing.T) {
	svc, credStore := newTestAuth(t)

	user, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)
	pair, _, err := svc.Login("alice@example.com", "pw123456")
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(user.ID, "newpassword"))

	count, err := credStore.TokenCount(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count, "password change must drop every session")

	// a refresh token that was valid before the change fails after it
	_, err = svc.Refresh(pair.RefreshToken)
	assert.Error(t, err)

	_, _, err = svc.Login("alice@example.com", "pw123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("alice@example.com", "newpassword")
	assert.NoError(t, err)
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	svc, _ := newTestAuth(t)

	err := svc.UpdatePassword(uuid.New(), "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExpiredRefreshTokenRejected(t *testing.T) {
	credStore := store.NewGormStore(newTestDB(t))
	expired := token.NewManager("access-secret", "refresh-secret", 15*time.Minute, -time.Minute)
	svc := NewAuthService(credStore, expired, 168*time.Hour)

	_, err := svc.Register("alice", "alice@example.com", "pw123456")
	require.NoError(t, err)
	pair, _, err := svc.Login("alice@example.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
