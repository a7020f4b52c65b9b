// Package store persists user identity and each user's set of currently
// valid refresh tokens.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sunseekerapp/sunseeker-backend/internal/models"
)

var ErrNotFound = errors.New("record not found")

// CredentialStore is the single source of truth for auth state. Tokens are
// passed in raw; adapters decide how they are kept at rest.
//
// RotateToken must leave the old token absent and exactly one new token
// present even under concurrent refresh attempts for the same user. The GORM
// adapter runs it in one transaction; an adapter without transactions has to
// preserve that visible effect with sequential remove-then-append writes.
type CredentialStore interface {
	CreateUser(user *models.User) error
	UserByEmail(email string) (*models.User, error)
	UserByID(id uuid.UUID) (*models.User, error)
	UpdatePassword(userID uuid.UUID, passwordHash string) error

	AppendToken(userID uuid.UUID, token string, expiresAt time.Time) error
	RemoveToken(userID uuid.UUID, token string) error
	ContainsToken(userID uuid.UUID, token string) (bool, error)
	RotateToken(userID uuid.UUID, oldToken, newToken string, expiresAt time.Time) error
	RevokeAll(userID uuid.UUID) error
	TokenCount(userID uuid.UUID) (int64, error)
}
