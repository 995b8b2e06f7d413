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

// requestService implements the RequestUsecase interface.
type requestService struct {
	requestRepo repository.RequestRepository
	enricher    *enricher
	logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.RequestUsecase {
	return &requestService{
		requestRepo: requestRepo,
		enricher:    newEnricher(userRepo, storage, logger),
		logger:      logger,
	}
}

// List returns requests with the requester's name and the image resolved.
func (srv *requestService) List(ctx context.Context, status string) ([]*usecase.RequestView, error) {
	requests, err := srv.requestRepo.List(ctx, entity.FilterValue(status, entity.FilterAll))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service requests")
	}

	return enrichEach(ctx, requests, srv.view), nil
}

// ListForUser returns one guest's requests with images resolved. The
// requester name is omitted since the caller already knows the user.
func (srv *requestService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*usecase.RequestView, error) {
	requests, err := srv.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service requests for user")
	}

	return enrichEach(ctx, requests, srv.imageView), nil
}

func (srv *requestService) Get(ctx context.Context, id uuid.UUID) (*usecase.RequestView, error) {
	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find service request")
	}

	return srv.view(ctx, request), nil
}

// Create submits a request; new requests start pending.
func (srv *requestService) Create(ctx context.Context, input *usecase.CreateRequestInput) (uuid.UUID, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Creating service request",
		slog.String("user_id", input.UserID.String()),
		slog.String("type", input.Type),
	)

	request := &entity.ServiceRequest{
		UserID:      input.UserID,
		Type:        input.Type,
		RoomNumber:  input.RoomNumber,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      entity.StatusPending,
		Image:       input.Image,
	}
	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create service request")
	}

	return request.ID, nil
}

func (srv *requestService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateRequestInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating service request", slog.String("request_id", id.String()))

	patch := &entity.ServiceRequestPatch{
		Type:        input.Type,
		RoomNumber:  input.RoomNumber,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		Image:       input.Image,
	}
	if err := srv.requestRepo.Update(ctx, id, patch); err != nil {
		return translateNotFound(err, repository.ErrRequestNotFound, domainerrors.ErrRequestNotFound, "failed to update service request")
	}

	return nil
}

func (srv *requestService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return srv.Update(ctx, id, &usecase.UpdateRequestInput{Status: &status})
}

func (srv *requestService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing service request", slog.String("request_id", id.String()))

	return errors.Wrap(srv.requestRepo.Delete(ctx, id), "failed to remove service request")
}

func (srv *requestService) view(ctx context.Context, request *entity.ServiceRequest) *usecase.RequestView {
	view := srv.imageView(ctx, request)
	view.UserName = srv.enricher.userName(ctx, request.UserID, usecase.UnknownName)

	return view
}

func (srv *requestService) imageView(ctx context.Context, request *entity.ServiceRequest) *usecase.RequestView {
	return &usecase.RequestView{
		ServiceRequest: request,
		ImageURL:       srv.enricher.fileURL(ctx, request.Image),
	}
}
