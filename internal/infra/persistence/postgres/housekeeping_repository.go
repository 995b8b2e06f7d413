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

type housekeepingRepository struct {
	db *gorm.DB
}

// NewHousekeepingRepository is the constructor for housekeepingRepository.
func NewHousekeepingRepository(db *gorm.DB) repository.HousekeepingRepository {
	return &housekeepingRepository{
		db: db,
	}
}

func (repo *housekeepingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HousekeepingAssignment, error) {
	var assignmentM model.HousekeepingAssignmentModel
	if err := findByID(ctx, repo.db, &assignmentM, id, repository.ErrAssignmentNotFound); err != nil {
		return nil, err
	}

	return toAssignmentDomain(&assignmentM), nil
}

func (repo *housekeepingRepository) List(ctx context.Context, status string) ([]*entity.HousekeepingAssignment, error) {
	var assignmentModels []*model.HousekeepingAssignmentModel

	query := repo.db.WithContext(ctx).Order("id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list housekeeping assignments")
	}

	return mapSlice(assignmentModels, toAssignmentDomain), nil
}

func (repo *housekeepingRepository) Create(ctx context.Context, assignment *entity.HousekeepingAssignment) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	assignment.ID = id

	return createRecord(ctx, repo.db, fromAssignmentDomain(assignment), "failed to create housekeeping assignment")
}

func (repo *housekeepingRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.HousekeepingPatch) error {
	columns := make(map[string]any)
	if patch != nil {
		setColumn(columns, "housekeeper_id", patch.HousekeeperID)
		setColumn(columns, "room_number", patch.RoomNumber)
		setColumn(columns, "service_type", patch.ServiceType)
		setColumn(columns, "status", patch.Status)
	}

	return updateColumns(ctx, repo.db, &model.HousekeepingAssignmentModel{}, id, columns, repository.ErrAssignmentNotFound)
}

func (repo *housekeepingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.HousekeepingAssignmentModel{}, id)
}

func toAssignmentDomain(data *model.HousekeepingAssignmentModel) *entity.HousekeepingAssignment {
	if data == nil {
		return nil
	}

	return &entity.HousekeepingAssignment{
		ID:            data.ID,
		HousekeeperID: data.HousekeeperID,
		RoomNumber:    data.RoomNumber,
		ServiceType:   data.ServiceType,
		Status:        data.Status,
		AssignedAt:    data.AssignedAt,
	}
}

func fromAssignmentDomain(data *entity.HousekeepingAssignment) *model.HousekeepingAssignmentModel {
	if data == nil {
		return nil
	}

	return &model.HousekeepingAssignmentModel{
		ID:            data.ID,
		HousekeeperID: data.HousekeeperID,
		RoomNumber:    data.RoomNumber,
		ServiceType:   data.ServiceType,
		Status:        data.Status,
		AssignedAt:    data.AssignedAt,
	}
}
