package models

import (
	"time"

	"github.com/google/uuid"
)

type SocialPost struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Group struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScheduledPost публикуется в ленту планировщиком, когда наступает PublishAt
type ScheduledPost struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	PublishAt time.Time  `json:"publish_at"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"created_at"`
}
