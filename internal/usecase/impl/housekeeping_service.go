package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "campnav/internal/delivery/context"
	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// housekeepingService implements the HousekeepingUsecase interface.
type housekeepingService struct {
	housekeepingRepo repository.HousekeepingRepository
	enricher         *enricher
	logger           *slog.Logger
	now              func() time.Time
}

// NewHousekeepingService is the constructor for housekeepingService.
func NewHousekeepingService(
	housekeepingRepo repository.HousekeepingRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.HousekeepingUsecase {
	return &housekeepingService{
		housekeepingRepo: housekeepingRepo,
		enricher:         newEnricher(userRepo, nil, logger),
		logger:           logger,
		now:              time.Now,
	}
}

// List returns assignments with the housekeeper's name.
func (srv *housekeepingService) List(ctx context.Context, status string) ([]*usecase.HousekeepingView, error) {
	assignments, err := srv.housekeepingRepo.List(ctx, entity.FilterValue(status, entity.FilterAll))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list housekeeping assignments")
	}

	return enrichEach(ctx, assignments, srv.view), nil
}

func (srv *housekeepingService) Get(ctx context.Context, id uuid.UUID) (*usecase.HousekeepingView, error) {
	assignment, err := srv.housekeepingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find housekeeping assignment")
	}

	return srv.view(ctx, assignment), nil
}

// Assign creates an assignment stamped with the current time.
func (srv *housekeepingService) Assign(ctx context.Context, input *usecase.AssignHousekeepingInput) (uuid.UUID, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Assigning housekeeper",
		slog.String("housekeeper_id", input.HousekeeperID.String()),
		slog.String("room_number", input.RoomNumber),
	)

	status := input.Status
	if status == "" {
		status = entity.StatusPending
	}

	assignment := &entity.HousekeepingAssignment{
		HousekeeperID: input.HousekeeperID,
		RoomNumber:    input.RoomNumber,
		ServiceType:   input.ServiceType,
		Status:        status,
		AssignedAt:    srv.now().UTC(),
	}
	if err := srv.housekeepingRepo.Create(ctx, assignment); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create housekeeping assignment")
	}

	return assignment.ID, nil
}

func (srv *housekeepingService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateHousekeepingInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating housekeeping assignment", slog.String("assignment_id", id.String()))

	patch := &entity.HousekeepingPatch{
		HousekeeperID: input.HousekeeperID,
		RoomNumber:    input.RoomNumber,
		ServiceType:   input.ServiceType,
		Status:        input.Status,
	}
	if err := srv.housekeepingRepo.Update(ctx, id, patch); err != nil {
		return translateNotFound(err, repository.ErrAssignmentNotFound, domainerrors.ErrAssignmentNotFound, "failed to update housekeeping assignment")
	}

	return nil
}

func (srv *housekeepingService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return srv.Update(ctx, id, &usecase.UpdateHousekeepingInput{Status: &status})
}

func (srv *housekeepingService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing housekeeping assignment", slog.String("assignment_id", id.String()))

	return errors.Wrap(srv.housekeepingRepo.Delete(ctx, id), "failed to remove housekeeping assignment")
}

func (srv *housekeepingService) view(ctx context.Context, assignment *entity.HousekeepingAssignment) *usecase.HousekeepingView {
	return &usecase.HousekeepingView{
		HousekeepingAssignment: assignment,
		HousekeeperName:        srv.enricher.userName(ctx, assignment.HousekeeperID, usecase.UnknownName),
	}
}
