package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"postId"`
	Sender    uuid.UUID `gorm:"type:uuid;not null;index" json:"sender"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
