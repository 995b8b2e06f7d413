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

// announcementService implements the AnnouncementUsecase interface.
type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	publisher        service.EventPublisher
	enricher         *enricher
	logger           *slog.Logger
}

// NewAnnouncementService is the constructor for announcementService.
func NewAnnouncementService(
	announcementRepo repository.AnnouncementRepository,
	publisher service.EventPublisher,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.AnnouncementUsecase {
	return &announcementService{
		announcementRepo: announcementRepo,
		publisher:        publisher,
		enricher:         newEnricher(nil, storage, logger),
		logger:           logger,
	}
}

// List returns announcements with the cover image resolved.
func (srv *announcementService) List(ctx context.Context, priority string) ([]*usecase.AnnouncementView, error) {
	announcements, err := srv.announcementRepo.List(ctx, entity.FilterValue(priority, entity.FilterAll))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	return enrichEach(ctx, announcements, srv.view), nil
}

func (srv *announcementService) Get(ctx context.Context, id uuid.UUID) (*usecase.AnnouncementView, error) {
	announcement, err := srv.announcementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find announcement")
	}

	return srv.view(ctx, announcement), nil
}

// Create stores the announcement, then publishes an event for guest channels.
// A failed publish is logged and does not fail the call.
func (srv *announcementService) Create(ctx context.Context, input *usecase.CreateAnnouncementInput) (uuid.UUID, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Creating announcement", slog.String("priority", input.Priority))

	announcement := &entity.Announcement{
		Title:      input.Title,
		Content:    input.Content,
		Author:     input.Author,
		Priority:   input.Priority,
		CoverImage: input.CoverImage,
	}
	if err := srv.announcementRepo.Create(ctx, announcement); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create announcement")
	}

	event := &service.AnnouncementEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		AnnouncementID: announcement.ID.String(),
		Title:          announcement.Title,
		Author:         announcement.Author,
		Priority:       announcement.Priority,
		CreatedAt:      announcement.CreatedAt,
	}
	if err := srv.publisher.PublishAnnouncementEvent(ctx, event); err != nil {
		logger.Error("Failed to publish announcement event",
			slog.String("announcement_id", event.AnnouncementID),
			slog.Any("error", err),
		)
	}

	return announcement.ID, nil
}

func (srv *announcementService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateAnnouncementInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating announcement", slog.String("announcement_id", id.String()))

	patch := &entity.AnnouncementPatch{
		Title:      input.Title,
		Content:    input.Content,
		Author:     input.Author,
		Priority:   input.Priority,
		CoverImage: input.CoverImage,
	}
	if err := srv.announcementRepo.Update(ctx, id, patch); err != nil {
		return translateNotFound(err, repository.ErrAnnouncementNotFound, domainerrors.ErrAnnouncementNotFound, "failed to update announcement")
	}

	return nil
}

func (srv *announcementService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing announcement", slog.String("announcement_id", id.String()))

	return errors.Wrap(srv.announcementRepo.Delete(ctx, id), "failed to remove announcement")
}

func (srv *announcementService) view(ctx context.Context, announcement *entity.Announcement) *usecase.AnnouncementView {
	return &usecase.AnnouncementView{
		Announcement:  announcement,
		CoverImageURL: srv.enricher.fileURL(ctx, announcement.CoverImage),
	}
}
