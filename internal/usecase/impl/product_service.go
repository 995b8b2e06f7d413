package impl

import (
	"context"
	"log/slog"

	deliverycontext "campnav/internal/delivery/context"
	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	"campnav/internal/domain/service"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	enricher    *enricher
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		enricher:    newEnricher(nil, storage, logger),
		logger:      logger,
	}
}

// List filters by service tag first ("none" disables it), then by category
// ("all" disables it).
func (srv *productService) List(ctx context.Context, category, svc string) ([]*usecase.ProductView, error) {
	filter := entity.ProductFilter{
		Service: entity.FilterValue(svc, entity.FilterNone),
	}
	if filter.Service == "" {
		filter.Category = entity.FilterValue(category, entity.FilterAll)
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return enrichEach(ctx, products, srv.view), nil
}

func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*usecase.ProductView, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return srv.view(ctx, product), nil
}

func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (uuid.UUID, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Creating product", slog.String("category", input.Category))

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Service:     input.Service,
		Image:       input.Image,
		Stock:       input.Stock,
		IsAvailable: input.IsAvailable,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create product")
	}

	return product.ID, nil
}

func (srv *productService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating product", slog.String("product_id", id.String()))

	patch := &entity.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Service:     input.Service,
		Image:       input.Image,
		Stock:       input.Stock,
		IsAvailable: input.IsAvailable,
	}
	if err := srv.productRepo.Update(ctx, id, patch); err != nil {
		return translateNotFound(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to update product")
	}

	return nil
}

func (srv *productService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing product", slog.String("product_id", id.String()))

	return errors.Wrap(srv.productRepo.Delete(ctx, id), "failed to remove product")
}

func (srv *productService) view(ctx context.Context, product *entity.Product) *usecase.ProductView {
	return &usecase.ProductView{
		Product:  product,
		ImageURL: srv.enricher.fileURL(ctx, product.Image),
	}
}
