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

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{
		db: db,
	}
}

func (repo *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcementM model.AnnouncementModel
	if err := findByID(ctx, repo.db, &announcementM, id, repository.ErrAnnouncementNotFound); err != nil {
		return nil, err
	}

	return toAnnouncementDomain(&announcementM), nil
}

func (repo *announcementRepository) List(ctx context.Context, priority string) ([]*entity.Announcement, error) {
	var announcementModels []*model.AnnouncementModel

	query := repo.db.WithContext(ctx).Order("id DESC")
	if priority != "" {
		query = query.Where("priority = ?", priority)
	}

	if err := query.Find(&announcementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	return mapSlice(announcementModels, toAnnouncementDomain), nil
}

func (repo *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	announcement.ID = id

	announcementM := fromAnnouncementDomain(announcement)
	if err := createRecord(ctx, repo.db, announcementM, "failed to create announcement"); err != nil {
		return err
	}
	announcement.CreatedAt = announcementM.CreatedAt

	return nil
}

func (repo *announcementRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.AnnouncementPatch) error {
	columns := make(map[string]any)
	if patch != nil {
		setColumn(columns, "title", patch.Title)
		setColumn(columns, "content", patch.Content)
		setColumn(columns, "author", patch.Author)
		setColumn(columns, "priority", patch.Priority)
		setColumn(columns, "cover_image", patch.CoverImage)
	}

	return updateColumns(ctx, repo.db, &model.AnnouncementModel{}, id, columns, repository.ErrAnnouncementNotFound)
}

func (repo *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.AnnouncementModel{}, id)
}

func toAnnouncementDomain(data *model.AnnouncementModel) *entity.Announcement {
	if data == nil {
		return nil
	}

	return &entity.Announcement{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		Author:     data.Author,
		Priority:   data.Priority,
		CoverImage: data.CoverImage,
		CreatedAt:  data.CreatedAt,
	}
}

func fromAnnouncementDomain(data *entity.Announcement) *model.AnnouncementModel {
	if data == nil {
		return nil
	}

	return &model.AnnouncementModel{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		Author:     data.Author,
		Priority:   data.Priority,
		CoverImage: data.CoverImage,
		CreatedAt:  data.CreatedAt,
	}
}
