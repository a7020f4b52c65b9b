package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a feed entry. Sender is the authoring user's id.
type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Sender    uuid.UUID `gorm:"type:uuid;not null;index" json:"sender"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
