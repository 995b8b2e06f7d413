package impl

import (
	"context"
	"testing"

	"campnav/internal/domain/entity"
	mockRepo "campnav/internal/mocks/repository"
	mockSvc "campnav/internal/mocks/service"
	"campnav/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestServiceFixtures struct {
	service     usecase.RequestUsecase
	requestRepo *mockRepo.MockRequestRepository
	userRepo    *mockRepo.MockUserRepository
	storage     *mockSvc.MockFileStorage
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	return requestServiceFixtures{
		service:     NewRequestService(requestRepo, userRepo, storage, newDiscardLogger()),
		requestRepo: requestRepo,
		userRepo:    userRepo,
		storage:     storage,
	}
}

func TestRequestService_List_EnrichesNameAndImage(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	guest, broken := newID(), newID()
	fx.requestRepo.EXPECT().List(ctx, entity.StatusInProgress).Return([]*entity.ServiceRequest{
		{UserID: guest, Image: "requests/leak.jpg"},
		{UserID: broken},
	}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, guest).Return(&entity.User{Name: "Sam"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, broken).Return(nil, errors.New("pool exhausted"))
	fx.storage.EXPECT().URL(ctx, "requests/leak.jpg").Return("/files/requests/leak.jpg", nil)

	views, err := fx.service.List(ctx, entity.StatusInProgress)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Sam", views[0].UserName)
	assert.Equal(t, "/files/requests/leak.jpg", *views[0].ImageURL)
	assert.Equal(t, usecase.ErrorLoadingName, views[1].UserName)
	assert.Nil(t, views[1].ImageURL)
}

func TestRequestService_ListForUser_SkipsNameLookup(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	userID := newID()

	fx.requestRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.ServiceRequest{
		{UserID: userID, Image: "https://img.example.com/x.png"},
	}, nil)

	views, err := fx.service.ListForUser(ctx, userID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].UserName)
	assert.Equal(t, "https://img.example.com/x.png", *views[0].ImageURL)
}

func TestRequestService_Create_StartsPending(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.requestRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(request *entity.ServiceRequest) bool {
			return request.Status == entity.StatusPending && request.Priority == "high"
		})).
		Return(nil)

	_, err := fx.service.Create(ctx, &usecase.CreateRequestInput{
		UserID:      newID(),
		Type:        "maintenance",
		RoomNumber:  "12",
		Description: "Shower leaking",
		Priority:    "high",
	})

	require.NoError(t, err)
}
