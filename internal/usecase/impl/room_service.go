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

// roomService implements the RoomUsecase interface.
type roomService struct {
	roomRepo repository.RoomRepository
	enricher *enricher
	logger   *slog.Logger
}

// NewRoomService is the constructor for roomService.
func NewRoomService(
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.RoomUsecase {
	return &roomService{
		roomRepo: roomRepo,
		enricher: newEnricher(userRepo, nil, logger),
		logger:   logger,
	}
}

// List returns rooms with the display name of their occupant.
func (srv *roomService) List(ctx context.Context, status string) ([]*usecase.RoomView, error) {
	rooms, err := srv.roomRepo.List(ctx, entity.FilterValue(status, entity.FilterAll))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return enrichEach(ctx, rooms, srv.view), nil
}

func (srv *roomService) Get(ctx context.Context, id uuid.UUID) (*usecase.RoomView, error) {
	room, err := srv.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find room")
	}

	return srv.view(ctx, room), nil
}

// Create adds a room. New rooms start available unless created under maintenance.
func (srv *roomService) Create(ctx context.Context, input *usecase.CreateRoomInput) (uuid.UUID, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Creating room", slog.String("room_number", input.RoomNumber))

	status := input.Status
	if status == "" {
		status = entity.RoomStatusAvailable
	}

	room := &entity.Room{
		RoomNumber:    input.RoomNumber,
		Category:      input.Category,
		Capacity:      input.Capacity,
		Status:        status,
		PricePerNight: input.PricePerNight,
	}
	if err := srv.roomRepo.Create(ctx, room); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create room")
	}

	return room.ID, nil
}

// Update patches a room. Changing the occupant without an explicit status
// derives the status in the same write.
func (srv *roomService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateRoomInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating room", slog.String("room_id", id.String()))

	patch := &entity.RoomPatch{
		RoomNumber:    input.RoomNumber,
		Category:      input.Category,
		Capacity:      input.Capacity,
		Status:        input.Status,
		OccupantID:    input.OccupantID,
		PricePerNight: input.PricePerNight,
	}
	if input.OccupantID.Set && input.Status == nil {
		patch.Status = entity.OccupancyPatch(input.OccupantID.Value).Status
	}

	if err := srv.roomRepo.Update(ctx, id, patch); err != nil {
		return translateNotFound(err, repository.ErrRoomNotFound, domainerrors.ErrRoomNotFound, "failed to update room")
	}

	return nil
}

// AssignOccupant sets the occupant and status together: occupied with a
// user, available without one.
func (srv *roomService) AssignOccupant(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if userID != nil {
		logger.Info("Assigning room occupant", slog.String("room_id", id.String()), slog.String("user_id", userID.String()))
	} else {
		logger.Info("Clearing room occupant", slog.String("room_id", id.String()))
	}

	if err := srv.roomRepo.Update(ctx, id, entity.OccupancyPatch(userID)); err != nil {
		return translateNotFound(err, repository.ErrRoomNotFound, domainerrors.ErrRoomNotFound, "failed to assign occupant")
	}

	return nil
}

func (srv *roomService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing room", slog.String("room_id", id.String()))

	return errors.Wrap(srv.roomRepo.Delete(ctx, id), "failed to remove room")
}

func (srv *roomService) view(ctx context.Context, room *entity.Room) *usecase.RoomView {
	view := &usecase.RoomView{Room: room}
	if room.OccupantID != nil {
		name := srv.enricher.userName(ctx, *room.OccupantID, usecase.DeletedRoomOwner)
		view.OccupantName = &name
	}

	return view
}
