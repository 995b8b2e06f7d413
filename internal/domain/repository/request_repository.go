package repository

import (
	"context"
	"errors"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errors.New("service request not found")

// RequestRepository persists service request records.
type RequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error)
	// List returns service request records newest first. An empty status scans every request.
	List(ctx context.Context, status string) ([]*entity.ServiceRequest, error)
	// ListByUser returns the requests submitted by userID, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ServiceRequest, error)
	Create(ctx context.Context, record *entity.ServiceRequest) error
	Update(ctx context.Context, id uuid.UUID, patch *entity.ServiceRequestPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
