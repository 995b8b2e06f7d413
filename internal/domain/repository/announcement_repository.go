package repository

import (
	"context"
	"errors"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementRepository persists announcement records.
type AnnouncementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	// List returns announcement records newest first. An empty priority scans every announcement.
	List(ctx context.Context, priority string) ([]*entity.Announcement, error)
	Create(ctx context.Context, record *entity.Announcement) error
	Update(ctx context.Context, id uuid.UUID, patch *entity.AnnouncementPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
