package postgres

import (
	"context"

	"campnav/internal/domain/entity"
	"campnav/internal/domain/repository"
	"campnav/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

func (repo *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel
	if err := findByID(ctx, repo.db, &reportM, id, repository.ErrReportNotFound); err != nil {
		return nil, err
	}

	return toReportDomain(&reportM), nil
}

func (repo *reportRepository) List(ctx context.Context, status string) ([]*entity.Report, error) {
	var reportModels []*model.ReportModel

	query := repo.db.WithContext(ctx).Order("id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return mapSlice(reportModels, toReportDomain), nil
}

func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	report.ID = id

	reportM := fromReportDomain(report)
	if err := createRecord(ctx, repo.db, reportM, "failed to create report"); err != nil {
		return err
	}
	report.CreatedAt = reportM.CreatedAt

	return nil
}

func (repo *reportRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.ReportPatch) error {
	columns := make(map[string]any)
	if patch != nil {
		setColumn(columns, "type", patch.Type)
		setColumn(columns, "title", patch.Title)
		setColumn(columns, "message", patch.Message)
		setColumn(columns, "status", patch.Status)
	}

	return updateColumns(ctx, repo.db, &model.ReportModel{}, id, columns, repository.ErrReportNotFound)
}

func (repo *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.ReportModel{}, id)
}

func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Title:     data.Title,
		Message:   data.Message,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Title:     data.Title,
		Message:   data.Message,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}
