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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := findByID(ctx, repo.db, &productM, id, repository.ErrProductNotFound); err != nil {
		return nil, err
	}

	return toProductDomain(&productM), nil
}

// List uses the service index when a service is given, otherwise the category
// index when a category is given, otherwise scans every product.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).Order("id DESC")
	switch {
	case filter.Service != "":
		query = query.Where("service = ?", filter.Service)
	case filter.Category != "":
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return mapSlice(productModels, toProductDomain), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	id, err := newRecordID()
	if err != nil {
		return err
	}
	product.ID = id

	productM := fromProductDomain(product)
	if err := createRecord(ctx, repo.db, productM, "failed to create product"); err != nil {
		return err
	}
	product.CreatedAt = productM.CreatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.ProductPatch) error {
	columns := make(map[string]any)
	if patch != nil {
		setColumn(columns, "name", patch.Name)
		setColumn(columns, "description", patch.Description)
		setColumn(columns, "price", patch.Price)
		setColumn(columns, "category", patch.Category)
		setColumn(columns, "service", patch.Service)
		setColumn(columns, "image", patch.Image)
		setColumn(columns, "stock", patch.Stock)
		setColumn(columns, "is_available", patch.IsAvailable)
	}

	return updateColumns(ctx, repo.db, &model.ProductModel{}, id, columns, repository.ErrProductNotFound)
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.ProductModel{}, id)
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		Service:     data.Service,
		Image:       data.Image,
		Stock:       data.Stock,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		Service:     data.Service,
		Image:       data.Image,
		Stock:       data.Stock,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
	}
}
