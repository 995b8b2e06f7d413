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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := findByID(ctx, repo.db, &orderM, id, repository.ErrOrderNotFound); err != nil {
		return nil, err
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders newest first, using the status index when a status is given.
func (repo *orderRepository) List(ctx context.Context, status string) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).Order("id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return mapSlice(orderModels, toOrderDomain), nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	order.ID = id

	orderM := fromOrderDomain(order)
	if err := createRecord(ctx, repo.db, orderM, "failed to create order"); err != nil {
		return err
	}
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.OrderPatch) error {
	columns := make(map[string]any)
	if patch != nil {
		setColumn(columns, "user_id", patch.UserID)
		setColumn(columns, "source", patch.Source)
		setColumn(columns, "summary", patch.Summary)
		setColumn(columns, "total", patch.Total)
		setColumn(columns, "status", patch.Status)
	}

	return updateColumns(ctx, repo.db, &model.OrderModel{}, id, columns, repository.ErrOrderNotFound)
}

func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.OrderModel{}, id)
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		Source:    data.Source,
		Summary:   data.Summary,
		Total:     data.Total,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Source:    data.Source,
		Summary:   data.Summary,
		Total:     data.Total,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}
