package repository

import (
	"context"
	"errors"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrReportNotFound = errors.New("report not found")

// ReportRepository persists report records.
type ReportRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	// List returns report records newest first. An empty status scans every report.
	List(ctx context.Context, status string) ([]*entity.Report, error)
	Create(ctx context.Context, record *entity.Report) error
	Update(ctx context.Context, id uuid.UUID, patch *entity.ReportPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
