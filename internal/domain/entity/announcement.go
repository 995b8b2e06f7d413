package entity

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a message broadcast to guests.
type Announcement struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Priority   string    `json:"priority"`
	CoverImage string    `json:"cover_image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type AnnouncementPatch struct {
	Title      *string
	Content    *string
	Author     *string
	Priority   *string
	CoverImage *string
}
