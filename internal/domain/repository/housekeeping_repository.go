package repository

import (
	"context"
	"errors"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrAssignmentNotFound = errors.New("housekeeping assignment not found")

// HousekeepingRepository persists housekeeping assignment records.
type HousekeepingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HousekeepingAssignment, error)
	// List returns housekeeping assignment records newest first. An empty status scans every assignment.
	List(ctx context.Context, status string) ([]*entity.HousekeepingAssignment, error)
	Create(ctx context.Context, record *entity.HousekeepingAssignment) error
	Update(ctx context.Context, id uuid.UUID, patch *entity.HousekeepingPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
