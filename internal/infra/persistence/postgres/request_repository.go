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

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error) {
	var requestM model.ServiceRequestModel
	if err := findByID(ctx, repo.db, &requestM, id, repository.ErrRequestNotFound); err != nil {
		return nil, err
	}

	return toRequestDomain(&requestM), nil
}

func (repo *requestRepository) List(ctx context.Context, status string) ([]*entity.ServiceRequest, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	return repo.find(query, "failed to list service requests")
}

// ListByUser uses the user_id index.
func (repo *requestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ServiceRequest, error) {
	return repo.find(repo.db.WithContext(ctx).Where("user_id = ?", userID), "failed to list service requests by user")
}

func (repo *requestRepository) find(query *gorm.DB, msg string) ([]*entity.ServiceRequest, error) {
	var requestModels []*model.ServiceRequestModel
	if err := query.Order("id DESC").Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	return mapSlice(requestModels, toRequestDomain), nil
}

func (repo *requestRepository) Create(ctx context.Context, request *entity.ServiceRequest) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	request.ID = id

	requestM := fromRequestDomain(request)
	if err := createRecord(ctx, repo.db, requestM, "failed to create service request"); err != nil {
		return err
	}
	request.CreatedAt = requestM.CreatedAt

	return nil
}

func (repo *requestRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.ServiceRequestPatch) error {
	columns := make(map[string]any)
	if patch != nil {
		setColumn(columns, "type", patch.Type)
		setColumn(columns, "room_number", patch.RoomNumber)
		setColumn(columns, "description", patch.Description)
		setColumn(columns, "priority", patch.Priority)
		setColumn(columns, "status", patch.Status)
		setColumn(columns, "image", patch.Image)
	}

	return updateColumns(ctx, repo.db, &model.ServiceRequestModel{}, id, columns, repository.ErrRequestNotFound)
}

func (repo *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.ServiceRequestModel{}, id)
}

func toRequestDomain(data *model.ServiceRequestModel) *entity.ServiceRequest {
	if data == nil {
		return nil
	}

	return &entity.ServiceRequest{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        data.Type,
		RoomNumber:  data.RoomNumber,
		Description: data.Description,
		Priority:    data.Priority,
		Status:      data.Status,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
	}
}

func fromRequestDomain(data *entity.ServiceRequest) *model.ServiceRequestModel {
	if data == nil {
		return nil
	}

	return &model.ServiceRequestModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        data.Type,
		RoomNumber:  data.RoomNumber,
		Description: data.Description,
		Priority:    data.Priority,
		Status:      data.Status,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
	}
}
