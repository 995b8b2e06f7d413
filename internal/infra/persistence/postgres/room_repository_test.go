package postgres

import (
	"context"
	"testing"

	"campnav/internal/domain/entity"
	"campnav/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRoom(t *testing.T, repo repository.RoomRepository, number, status string) *entity.Room {
	t.Helper()

	room := &entity.Room{
		RoomNumber:    number,
		Category:      "cabin",
		Capacity:      4,
		Status:        status,
		PricePerNight: ptr(120.5),
	}
	require.NoError(t, repo.Create(context.Background(), room))
	require.NotEqual(t, uuid.Nil, room.ID)

	return room
}

func TestRoomRepository_CreateThenListPreservesFields(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))
	ctx := context.Background()
	occupant := uuid.New()

	room := &entity.Room{
		RoomNumber:    "A-101",
		Category:      "deluxe",
		Capacity:      2,
		Status:        entity.RoomStatusOccupied,
		OccupantID:    &occupant,
		PricePerNight: ptr(250.0),
	}
	require.NoError(t, repo.Create(ctx, room))

	rooms, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	got := rooms[0]
	assert.Equal(t, room.ID, got.ID)
	assert.Equal(t, "A-101", got.RoomNumber)
	assert.Equal(t, "deluxe", got.Category)
	assert.Equal(t, 2, got.Capacity)
	assert.Equal(t, entity.RoomStatusOccupied, got.Status)
	require.NotNil(t, got.OccupantID)
	assert.Equal(t, occupant, *got.OccupantID)
	require.NotNil(t, got.PricePerNight)
	assert.InDelta(t, 250.0, *got.PricePerNight, 0.0001)
}

func TestRoomRepository_ListNewestFirstAndFiltered(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))
	ctx := context.Background()

	first := createTestRoom(t, repo, "1", entity.RoomStatusAvailable)
	second := createTestRoom(t, repo, "2", entity.RoomStatusMaintenance)
	third := createTestRoom(t, repo, "3", entity.RoomStatusAvailable)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{third.ID, second.ID, first.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	available, err := repo.List(ctx, entity.RoomStatusAvailable)
	require.NoError(t, err)
	require.Len(t, available, 2)
	for _, room := range available {
		assert.Equal(t, entity.RoomStatusAvailable, room.Status)
	}
}

func TestRoomRepository_UpdateChangesOnlyPatchedFields(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))
	ctx := context.Background()
	room := createTestRoom(t, repo, "B-7", entity.RoomStatusAvailable)

	require.NoError(t, repo.Update(ctx, room.ID, &entity.RoomPatch{Capacity: ptr(6)}))

	got, err := repo.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Capacity)
	assert.Equal(t, room.RoomNumber, got.RoomNumber)
	assert.Equal(t, room.Category, got.Category)
	assert.Equal(t, room.Status, got.Status)
	assert.Nil(t, got.OccupantID)
	require.NotNil(t, got.PricePerNight)
	assert.InDelta(t, *room.PricePerNight, *got.PricePerNight, 0.0001)
}

func TestRoomRepository_OccupancyPatch(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))
	ctx := context.Background()
	room := createTestRoom(t, repo, "C-1", entity.RoomStatusAvailable)
	guest := uuid.New()

	require.NoError(t, repo.Update(ctx, room.ID, entity.OccupancyPatch(&guest)))
	got, err := repo.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoomStatusOccupied, got.Status)
	require.NotNil(t, got.OccupantID)
	assert.Equal(t, guest, *got.OccupantID)

	require.NoError(t, repo.Update(ctx, room.ID, entity.OccupancyPatch(nil)))
	got, err = repo.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoomStatusAvailable, got.Status)
	assert.Nil(t, got.OccupantID)
}

func TestRoomRepository_UpdateMissingRoom(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))

	err := repo.Update(context.Background(), uuid.New(), &entity.RoomPatch{Capacity: ptr(1)})
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)

	err = repo.Update(context.Background(), uuid.New(), &entity.RoomPatch{})
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
}

func TestRoomRepository_DeleteThenFind(t *testing.T) {
	repo := NewRoomRepository(newTestDB(t))
	ctx := context.Background()
	room := createTestRoom(t, repo, "D-4", entity.RoomStatusAvailable)

	require.NoError(t, repo.Delete(ctx, room.ID))

	_, err := repo.FindByID(ctx, room.ID)
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)

	rooms, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, rooms)

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete(ctx, room.ID))
}
