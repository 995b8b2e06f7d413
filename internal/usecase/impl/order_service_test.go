package impl

import (
	"context"
	"testing"

	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	mockRepo "campnav/internal/mocks/repository"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return orderServiceFixtures{
		service:   NewOrderService(orderRepo, userRepo, newDiscardLogger()),
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func TestOrderService_List_UserNames(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	buyer, gone := newID(), newID()
	orders := []*entity.Order{
		{UserID: buyer, Summary: "2x pizza"},
		{UserID: gone, Summary: "1x soda"},
	}
	fx.orderRepo.EXPECT().List(ctx, entity.StatusPending).Return(orders, nil)
	fx.userRepo.EXPECT().FindByID(ctx, buyer).Return(&entity.User{Name: "Lin"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, gone).Return(nil, repository.ErrUserNotFound)

	views, err := fx.service.List(ctx, entity.StatusPending)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Lin", views[0].UserName)
	assert.Equal(t, usecase.DeletedUserName, views[1].UserName)
}

func TestOrderService_Create_ReturnsRecord(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := newID()

	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.Status == entity.StatusPending
		})).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = newID()
		}).
		Return(nil)

	order, err := fx.service.Create(ctx, &usecase.CreateOrderInput{
		UserID:  userID,
		Source:  "restaurant",
		Summary: "2x pizza",
		Total:   24.5,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.InDelta(t, 24.5, order.Total, 0.0001)
}

func TestOrderService_UpdateStatus_ReturnsUpdatedRecord(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	id := newID()

	fx.orderRepo.EXPECT().
		Update(ctx, id, mock.MatchedBy(func(patch *entity.OrderPatch) bool {
			return *patch.Status == entity.StatusCompleted && patch.Total == nil
		})).
		Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Status: entity.StatusCompleted}, nil)

	order, err := fx.service.UpdateStatus(ctx, id, entity.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, order.Status)
}

func TestOrderService_UpdateStatus_Missing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	id := newID()

	fx.orderRepo.EXPECT().Update(ctx, id, mock.AnythingOfType("*entity.OrderPatch")).Return(repository.ErrOrderNotFound)

	order, err := fx.service.UpdateStatus(ctx, id, entity.StatusCompleted)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
