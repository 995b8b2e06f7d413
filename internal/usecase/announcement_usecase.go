package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AnnouncementUsecase defines the interface for announcement-related business operations.
type AnnouncementUsecase interface {
	List(ctx context.Context, priority string) ([]*AnnouncementView, error)
	Get(ctx context.Context, id uuid.UUID) (*AnnouncementView, error)
	// Create stores the announcement and publishes an announcement event.
	Create(ctx context.Context, input *CreateAnnouncementInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateAnnouncementInput) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// CreateAnnouncementInput defines the data required to publish an announcement.
type CreateAnnouncementInput struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Priority   string `json:"priority" validate:"required,oneof=low medium high"`
	CoverImage string `json:"cover_image,omitempty"`
}

// UpdateAnnouncementInput lists the announcement fields to change.
type UpdateAnnouncementInput struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Author     *string `json:"author,omitempty"`
	Priority   *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	CoverImage *string `json:"cover_image,omitempty"`
}
