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

// upcomingWindow is how far ahead ListUpcoming looks.
const upcomingWindow = 7 * 24 * time.Hour

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewActivityService is the constructor for activityService.
func NewActivityService(activityRepo repository.ActivityRepository, logger *slog.Logger) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: activityRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *activityService) List(ctx context.Context) ([]*entity.Activity, error) {
	activities, err := srv.activityRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// ListUpcoming returns activities dated before a week from now, including
// ones already past.
func (srv *activityService) ListUpcoming(ctx context.Context) ([]*entity.Activity, error) {
	activities, err := srv.activityRepo.ListBefore(ctx, srv.now().Add(upcomingWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming activities")
	}

	return activities, nil
}

func (srv *activityService) Get(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := srv.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	return activity, nil
}

func (srv *activityService) Create(ctx context.Context, input *usecase.CreateActivityInput) (uuid.UUID, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Creating activity", slog.String("title", input.Title))

	activity := &entity.Activity{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Category:    input.Category,
		Capacity:    input.Capacity,
	}
	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create activity")
	}

	return activity.ID, nil
}

func (srv *activityService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateActivityInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating activity", slog.String("activity_id", id.String()))

	patch := &entity.ActivityPatch{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Category:    input.Category,
		Capacity:    input.Capacity,
	}
	if err := srv.activityRepo.Update(ctx, id, patch); err != nil {
		return translateNotFound(err, repository.ErrActivityNotFound, domainerrors.ErrActivityNotFound, "failed to update activity")
	}

	return nil
}

func (srv *activityService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing activity", slog.String("activity_id", id.String()))

	return errors.Wrap(srv.activityRepo.Delete(ctx, id), "failed to remove activity")
}
