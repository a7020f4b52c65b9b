package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one member of a user's active refresh-token set. Only a
// sha256 hash of the token string is kept at rest; membership checks compare
// hashes. An empty set for a user means no active session.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
