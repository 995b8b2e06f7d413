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

// roomRepository implements the repository.RoomRepository interface.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

func (repo *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel
	if err := findByID(ctx, repo.db, &roomM, id, repository.ErrRoomNotFound); err != nil {
		return nil, err
	}

	return toRoomDomain(&roomM), nil
}

// List returns rooms newest first, using the status index when a status is given.
func (repo *roomRepository) List(ctx context.Context, status string) ([]*entity.Room, error) {
	var roomModels []*model.RoomModel

	query := repo.db.WithContext(ctx).Order("id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&roomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return mapSlice(roomModels, toRoomDomain), nil
}

func (repo *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	room.ID = id

	roomM := fromRoomDomain(room)
	if err := createRecord(ctx, repo.db, roomM, "failed to create room"); err != nil {
		return err
	}
	room.CreatedAt = roomM.CreatedAt

	return nil
}

// Update applies a field-level patch. Status and occupant travel in the same
// UPDATE statement, so occupancy changes are atomic.
func (repo *roomRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.RoomPatch) error {
	return updateColumns(ctx, repo.db, &model.RoomModel{}, id, roomPatchColumns(patch), repository.ErrRoomNotFound)
}

func (repo *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.RoomModel{}, id)
}

func roomPatchColumns(patch *entity.RoomPatch) map[string]any {
	columns := make(map[string]any)
	if patch == nil {
		return columns
	}

	setColumn(columns, "room_number", patch.RoomNumber)
	setColumn(columns, "category", patch.Category)
	setColumn(columns, "capacity", patch.Capacity)
	setColumn(columns, "status", patch.Status)
	setNullableColumn(columns, "occupant_id", patch.OccupantID)
	setNullableColumn(columns, "price_per_night", patch.PricePerNight)

	return columns
}

// --- Mapper Functions ---

func toRoomDomain(data *model.RoomModel) *entity.Room {
	if data == nil {
		return nil
	}

	return &entity.Room{
		ID:            data.ID,
		RoomNumber:    data.RoomNumber,
		Category:      data.Category,
		Capacity:      data.Capacity,
		Status:        data.Status,
		OccupantID:    data.OccupantID,
		PricePerNight: data.PricePerNight,
		CreatedAt:     data.CreatedAt,
	}
}

func fromRoomDomain(data *entity.Room) *model.RoomModel {
	if data == nil {
		return nil
	}

	return &model.RoomModel{
		ID:            data.ID,
		RoomNumber:    data.RoomNumber,
		Category:      data.Category,
		Capacity:      data.Capacity,
		Status:        data.Status,
		OccupantID:    data.OccupantID,
		PricePerNight: data.PricePerNight,
		CreatedAt:     data.CreatedAt,
	}
}
