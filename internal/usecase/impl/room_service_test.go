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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type roomServiceFixtures struct {
	service  usecase.RoomUsecase
	roomRepo *mockRepo.MockRoomRepository
	userRepo *mockRepo.MockUserRepository
}

func createTestRoomService(t *testing.T) roomServiceFixtures {
	roomRepo := mockRepo.NewMockRoomRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return roomServiceFixtures{
		service:  NewRoomService(roomRepo, userRepo, newDiscardLogger()),
		roomRepo: roomRepo,
		userRepo: userRepo,
	}
}

func TestRoomService_List_OccupantNames(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	present, deleted, failing := newID(), newID(), newID()
	rooms := []*entity.Room{
		{RoomNumber: "101", OccupantID: &present},
		{RoomNumber: "102", OccupantID: &deleted},
		{RoomNumber: "103", OccupantID: &failing},
		{RoomNumber: "104"},
	}
	fx.roomRepo.EXPECT().List(ctx, "").Return(rooms, nil)
	fx.userRepo.EXPECT().FindByID(ctx, present).Return(&entity.User{ID: present, Name: "Ada"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, deleted).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, failing).Return(nil, errors.New("timeout"))

	views, err := fx.service.List(ctx, "all")

	require.NoError(t, err)
	require.Len(t, views, 4)
	assert.Equal(t, "101", views[0].RoomNumber)
	assert.Equal(t, "Ada", *views[0].OccupantName)
	assert.Equal(t, usecase.DeletedRoomOwner, *views[1].OccupantName)
	assert.Equal(t, usecase.ErrorLoadingName, *views[2].OccupantName)
	assert.Nil(t, views[3].OccupantName)
}

func TestRoomService_List_StatusFilter(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	fx.roomRepo.EXPECT().List(ctx, entity.RoomStatusOccupied).Return(nil, errors.New("db down"))

	views, err := fx.service.List(ctx, entity.RoomStatusOccupied)

	require.Error(t, err)
	assert.Nil(t, views)
}

func TestRoomService_Create_DefaultsToAvailable(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	id := newID()

	fx.roomRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(room *entity.Room) bool {
			return room.Status == entity.RoomStatusAvailable && room.OccupantID == nil
		})).
		Run(func(ctx context.Context, room *entity.Room) {
			room.ID = id
		}).
		Return(nil)

	got, err := fx.service.Create(ctx, &usecase.CreateRoomInput{RoomNumber: "201", Category: "Deluxe", Capacity: 2})

	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestRoomService_AssignOccupant(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     *uuid.UUID
		wantStatus string
	}{
		{name: "assign", userID: ptr(newID()), wantStatus: entity.RoomStatusOccupied},
		{name: "clear", userID: nil, wantStatus: entity.RoomStatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRoomService(t)
			roomID := newID()

			fx.roomRepo.EXPECT().
				Update(ctx, roomID, mock.MatchedBy(func(patch *entity.RoomPatch) bool {
					return *patch.Status == tt.wantStatus &&
						patch.OccupantID.Set &&
						patch.OccupantID.Value == tt.userID
				})).
				Return(nil)

			require.NoError(t, fx.service.AssignOccupant(ctx, roomID, tt.userID))
		})
	}
}

func TestRoomService_AssignOccupant_MissingRoom(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	roomID := newID()

	fx.roomRepo.EXPECT().Update(ctx, roomID, mock.AnythingOfType("*entity.RoomPatch")).Return(repository.ErrRoomNotFound)

	err := fx.service.AssignOccupant(ctx, roomID, nil)

	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}

func TestRoomService_Update_ClearingOccupantFreesRoom(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	roomID := newID()

	fx.roomRepo.EXPECT().
		Update(ctx, roomID, mock.MatchedBy(func(patch *entity.RoomPatch) bool {
			return patch.OccupantID.Clear() && *patch.Status == entity.RoomStatusAvailable
		})).
		Return(nil)

	err := fx.service.Update(ctx, roomID, &usecase.UpdateRoomInput{
		OccupantID: entity.NewNullable[uuid.UUID](nil),
	})

	require.NoError(t, err)
}

func TestRoomService_Update_ExplicitStatusWins(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	roomID := newID()

	fx.roomRepo.EXPECT().
		Update(ctx, roomID, mock.MatchedBy(func(patch *entity.RoomPatch) bool {
			return patch.OccupantID.Clear() && *patch.Status == entity.RoomStatusMaintenance
		})).
		Return(nil)

	err := fx.service.Update(ctx, roomID, &usecase.UpdateRoomInput{
		Status:     ptr(entity.RoomStatusMaintenance),
		OccupantID: entity.NewNullable[uuid.UUID](nil),
	})

	require.NoError(t, err)
}

func TestRoomService_Get_Missing(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	id := newID()

	fx.roomRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRoomNotFound)

	view, err := fx.service.Get(ctx, id)

	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestRoomService_Remove(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	id := newID()

	fx.roomRepo.EXPECT().Delete(ctx, id).Return(nil)

	assert.NoError(t, fx.service.Remove(ctx, id))
}
