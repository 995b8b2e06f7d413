package handler

import (
	"net/http"
	"testing"

	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	mockUC "campnav/internal/mocks/usecase"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRoomHandler(t *testing.T) (*RoomHandler, *mockUC.MockRoomUsecase) {
	roomUC := mockUC.NewMockRoomUsecase(t)

	return NewRoomHandler(RoomHandlerParams{RoomUC: roomUC, Logger: newDiscardLogger()}), roomUC
}

func TestRoomHandler_ListRooms(t *testing.T) {
	h, roomUC := newTestRoomHandler(t)
	name := "Ada"
	roomUC.EXPECT().List(mock.Anything, entity.RoomStatusOccupied).Return([]*usecase.RoomView{
		{Room: &entity.Room{ID: uuid.New(), RoomNumber: "101", Status: entity.RoomStatusOccupied}, OccupantName: &name},
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/rooms?status=occupied", "")
	require.NoError(t, h.ListRooms(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var rooms []map[string]any
	decodeData(t, rec, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0]["room_number"])
	assert.Equal(t, "Ada", rooms[0]["occupant_name"])
}

func TestRoomHandler_GetRoom_InvalidID(t *testing.T) {
	h, _ := newTestRoomHandler(t)

	c, rec := newContext(http.MethodGet, "/api/v1/rooms/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	require.NoError(t, h.GetRoom(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestRoomHandler_GetRoom_Missing(t *testing.T) {
	h, roomUC := newTestRoomHandler(t)
	id := uuid.New()
	roomUC.EXPECT().Get(mock.Anything, id).Return(nil, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/rooms/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.GetRoom(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, extractData(t, rec))
}

func TestRoomHandler_CreateRoom(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, roomUC := newTestRoomHandler(t)
		id := uuid.New()
		roomUC.EXPECT().Create(mock.Anything, &usecase.CreateRoomInput{
			RoomNumber: "12",
			Category:   "cabin",
			Capacity:   4,
		}).Return(id, nil)

		c, rec := newContext(http.MethodPost, "/api/v1/rooms", `{"room_number":"12","category":"cabin","capacity":4}`)
		require.NoError(t, h.CreateRoom(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var body CreatedResponse
		decodeData(t, rec, &body)
		assert.Equal(t, id, body.ID)
	})

	t.Run("validation error", func(t *testing.T) {
		h, _ := newTestRoomHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/rooms", `{"category":"cabin"}`)
		require.NoError(t, h.CreateRoom(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Code)
	})
}

func TestRoomHandler_UpdateRoom_NotFound(t *testing.T) {
	h, roomUC := newTestRoomHandler(t)
	id := uuid.New()
	roomUC.EXPECT().Update(mock.Anything, id, mock.Anything).Return(domainerrors.ErrRoomNotFound)

	c, rec := newContext(http.MethodPatch, "/api/v1/rooms/"+id.String(), `{"category":"suite"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.UpdateRoom(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoomHandler_AssignOccupant(t *testing.T) {
	t.Run("assigns user", func(t *testing.T) {
		h, roomUC := newTestRoomHandler(t)
		id, userID := uuid.New(), uuid.New()
		roomUC.EXPECT().AssignOccupant(mock.Anything, id, &userID).Return(nil)

		c, rec := newContext(http.MethodPut, "/api/v1/rooms/"+id.String()+"/occupant", `{"user_id":"`+userID.String()+`"}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		require.NoError(t, h.AssignOccupant(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("null clears occupant", func(t *testing.T) {
		h, roomUC := newTestRoomHandler(t)
		id := uuid.New()
		roomUC.EXPECT().AssignOccupant(mock.Anything, id, (*uuid.UUID)(nil)).Return(nil)

		c, rec := newContext(http.MethodPut, "/api/v1/rooms/"+id.String()+"/occupant", `{"user_id":null}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		require.NoError(t, h.AssignOccupant(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRoomHandler_RemoveRoom(t *testing.T) {
	h, roomUC := newTestRoomHandler(t)
	id := uuid.New()
	roomUC.EXPECT().Remove(mock.Anything, id).Return(nil)

	c, rec := newContext(http.MethodDelete, "/api/v1/rooms/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.RemoveRoom(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body MessageResponse
	decodeData(t, rec, &body)
	assert.Equal(t, "Room removed successfully", body.Message)
}
