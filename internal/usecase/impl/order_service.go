package impl

import (
	"context"
	"log/slog"

	deliverycontext "campnav/internal/delivery/context"
	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	enricher  *enricher
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		enricher:  newEnricher(userRepo, nil, logger),
		logger:    logger,
	}
}

// List returns orders with the name of the ordering user.
func (srv *orderService) List(ctx context.Context, status string) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.List(ctx, entity.FilterValue(status, entity.FilterAll))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return enrichEach(ctx, orders, srv.view), nil
}

func (srv *orderService) Get(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return srv.view(ctx, order), nil
}

// Create places an order, pending unless another status is given, and
// returns the stored record.
func (srv *orderService) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Creating order",
		slog.String("user_id", input.UserID.String()),
		slog.String("source", input.Source),
	)

	status := input.Status
	if status == "" {
		status = entity.StatusPending
	}

	order := &entity.Order{
		UserID:  input.UserID,
		Source:  input.Source,
		Summary: input.Summary,
		Total:   input.Total,
		Status:  status,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return order, nil
}

func (srv *orderService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating order", slog.String("order_id", id.String()))

	patch := &entity.OrderPatch{
		UserID:  input.UserID,
		Source:  input.Source,
		Summary: input.Summary,
		Total:   input.Total,
		Status:  input.Status,
	}
	if err := srv.orderRepo.Update(ctx, id, patch); err != nil {
		return translateNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order")
	}

	return nil
}

// UpdateStatus changes the order status and returns the updated order.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	if err := srv.Update(ctx, id, &usecase.UpdateOrderInput{Status: &status}); err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to reload order")
	}

	return order, nil
}

func (srv *orderService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing order", slog.String("order_id", id.String()))

	return errors.Wrap(srv.orderRepo.Delete(ctx, id), "failed to remove order")
}

func (srv *orderService) view(ctx context.Context, order *entity.Order) *usecase.OrderView {
	return &usecase.OrderView{
		Order:    order,
		UserName: srv.enricher.userName(ctx, order.UserID, usecase.DeletedUserName),
	}
}
