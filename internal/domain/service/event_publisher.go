package service

import (
	"context"
	"time"
)

// AnnouncementEvent is emitted after an announcement is published so that
// guest-facing channels can fan it out.
type AnnouncementEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	AnnouncementID string    `json:"announcement_id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Priority       string    `json:"priority"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnnouncementEvent publishes an announcement event for async delivery
	PublishAnnouncementEvent(ctx context.Context, event *AnnouncementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
