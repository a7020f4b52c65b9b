package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	pair, err := m.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	got, err := m.Verify(pair.AccessToken, Access)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	got, err = m.Verify(pair.RefreshToken, Refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyRejectsWrongKind(t *testing.T) {
	m := newTestManager()

	pair, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(pair.AccessToken, Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify(pair.RefreshToken, Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	pair, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(pair.AccessToken, Access)
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = m.Verify(pair.RefreshToken, Refresh)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyGarbage(t *testing.T) {
	m := newTestManager()

	_, err := m.Verify("garbage", Access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("", Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueWithoutSecret(t *testing.T) {
	m := NewManager("", "", 15*time.Minute, 168*time.Hour)

	_, err := m.Issue(uuid.New())
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = m.Verify("whatever", Access)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestSuccessivePairsDiffer(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	first, err := m.Issue(userID)
	require.NoError(t, err)
	second, err := m.Issue(userID)
	require.NoError(t, err)

	// jti guarantees distinct signatures even within the same second.
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}
