package usecase

import (
	"context"
	"time"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// List returns users newest first, filtered by role unless role is empty or "all".
	List(ctx context.Context, role string) ([]*UserView, error)
	ListAll(ctx context.Context) ([]*UserView, error)
	// Get returns nil without error when the user does not exist.
	Get(ctx context.Context, id uuid.UUID) (*UserView, error)
	Create(ctx context.Context, input *CreateUserInput) (uuid.UUID, error)
	// Upsert inserts a user or overwrites the profile of the user with the same email.
	Upsert(ctx context.Context, input *CreateUserInput) (*UserView, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) error
	Remove(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (*UserStats, error)
	// VerifyUser returns nil without error when the credentials do not match.
	VerifyUser(ctx context.Context, email, password string) (*UserView, error)
}

// --- Input DTOs ---

// CreateUserInput defines the data required to create or upsert a user.
type CreateUserInput struct {
	Name          string     `json:"name" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Image         string     `json:"image,omitempty"`
	Password      *string    `json:"password,omitempty"`
	Role          string     `json:"role,omitempty" validate:"omitempty,oneof=admin staff housekeeper visitor"`
	DurationStart *time.Time `json:"duration_start,omitempty"`
	DurationEnd   *time.Time `json:"duration_end,omitempty"`
	IsOnSite      *bool      `json:"is_on_site,omitempty"`
	CampStaffID   string     `json:"camp_staff_id,omitempty"`
}

// UpdateUserInput lists the user fields to change. A null stay date clears it.
type UpdateUserInput struct {
	Name          *string                    `json:"name,omitempty"`
	Email         *string                    `json:"email,omitempty" validate:"omitempty,email"`
	Image         *string                    `json:"image,omitempty"`
	Password      *string                    `json:"password,omitempty"`
	Role          *string                    `json:"role,omitempty" validate:"omitempty,oneof=admin staff housekeeper visitor"`
	DurationStart entity.Nullable[time.Time] `json:"duration_start"`
	DurationEnd   entity.Nullable[time.Time] `json:"duration_end"`
	IsOnSite      entity.Nullable[bool]      `json:"is_on_site"`
	CampStaffID   *string                    `json:"camp_staff_id,omitempty"`
}
