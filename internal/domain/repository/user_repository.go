// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserEmailTaken is returned when a write would duplicate a user's email.
var ErrUserEmailTaken = errors.New("user email already exists")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users newest first. An empty role scans every user.
	List(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create persists a new user and assigns its ID and creation time.
	Create(ctx context.Context, user *entity.User) error

	// Update applies the non-nil fields of patch to the user.
	Update(ctx context.Context, id uuid.UUID, patch *entity.UserPatch) error

	// Delete removes the user. Deleting a missing user is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
