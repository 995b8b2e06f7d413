package repository

import (
	"context"
	"errors"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errors.New("room not found")

// RoomRepository persists room records.
type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	// List returns room records newest first. An empty status scans every room.
	List(ctx context.Context, status string) ([]*entity.Room, error)
	Create(ctx context.Context, record *entity.Room) error
	Update(ctx context.Context, id uuid.UUID, patch *entity.RoomPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
