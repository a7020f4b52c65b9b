package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. The password hash is never serialized; the
// user's refresh-token set lives in refresh_tokens rows.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Username  string    `gorm:"size:100;not null" json:"username"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
