package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ReportUsecase defines the interface for user report operations.
type ReportUsecase interface {
	List(ctx context.Context, status string) ([]*ReportView, error)
	Get(ctx context.Context, id uuid.UUID) (*ReportView, error)
	Create(ctx context.Context, input *CreateReportInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateReportInput) error
	MarkAsResolved(ctx context.Context, id uuid.UUID) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// CreateReportInput defines the data required to file a report.
type CreateReportInput struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Type    string    `json:"type" validate:"required,oneof=bug feedback incident"`
	Title   string    `json:"title" validate:"required"`
	Message string    `json:"message" validate:"required"`
}

// UpdateReportInput lists the report fields to change.
type UpdateReportInput struct {
	Type    *string `json:"type,omitempty" validate:"omitempty,oneof=bug feedback incident"`
	Title   *string `json:"title,omitempty"`
	Message *string `json:"message,omitempty"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=unread resolved"`
}
