package postgres

import (
	"context"
	"time"

	"campnav/internal/domain/entity"
	"campnav/internal/domain/repository"
	"campnav/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

func (repo *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel
	if err := findByID(ctx, repo.db, &activityM, id, repository.ErrActivityNotFound); err != nil {
		return nil, err
	}

	return toActivityDomain(&activityM), nil
}

// List returns activities oldest first.
func (repo *activityRepository) List(ctx context.Context) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return mapSlice(activityModels, toActivityDomain), nil
}

// ListBefore uses the date index.
func (repo *activityRepository) ListBefore(ctx context.Context, until time.Time) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Where("date < ?", until).
		Order("date ASC").
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming activities")
	}

	return mapSlice(activityModels, toActivityDomain), nil
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	activity.ID = id

	activityM := fromActivityDomain(activity)
	if err := createRecord(ctx, repo.db, activityM, "failed to create activity"); err != nil {
		return err
	}
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

func (repo *activityRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.ActivityPatch) error {
	columns := make(map[string]any)
	if patch != nil {
		setColumn(columns, "title", patch.Title)
		setColumn(columns, "description", patch.Description)
		setColumn(columns, "date", patch.Date)
		setColumn(columns, "time", patch.Time)
		setColumn(columns, "location", patch.Location)
		setColumn(columns, "category", patch.Category)
		setNullableColumn(columns, "capacity", patch.Capacity)
	}

	return updateColumns(ctx, repo.db, &model.ActivityModel{}, id, columns, repository.ErrActivityNotFound)
}

func (repo *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.ActivityModel{}, id)
}

func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Time:        data.Time,
		Location:    data.Location,
		Category:    data.Category,
		Capacity:    data.Capacity,
		CreatedAt:   data.CreatedAt,
	}
}

func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Time:        data.Time,
		Location:    data.Location,
		Category:    data.Category,
		Capacity:    data.Capacity,
		CreatedAt:   data.CreatedAt,
	}
}
