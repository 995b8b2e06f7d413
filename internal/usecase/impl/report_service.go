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

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	enricher   *enricher
	logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		reportRepo: reportRepo,
		enricher:   newEnricher(userRepo, nil, logger),
		logger:     logger,
	}
}

// List returns reports with the reporter's name.
func (srv *reportService) List(ctx context.Context, status string) ([]*usecase.ReportView, error) {
	reports, err := srv.reportRepo.List(ctx, entity.FilterValue(status, entity.FilterAll))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return enrichEach(ctx, reports, srv.view), nil
}

func (srv *reportService) Get(ctx context.Context, id uuid.UUID) (*usecase.ReportView, error) {
	report, err := srv.reportRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	return srv.view(ctx, report), nil
}

// Create files a report; new reports start unread.
func (srv *reportService) Create(ctx context.Context, input *usecase.CreateReportInput) (uuid.UUID, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Creating report",
		slog.String("user_id", input.UserID.String()),
		slog.String("type", input.Type),
	)

	report := &entity.Report{
		UserID:  input.UserID,
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
		Status:  entity.ReportStatusUnread,
	}
	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create report")
	}

	return report.ID, nil
}

func (srv *reportService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateReportInput) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating report", slog.String("report_id", id.String()))

	patch := &entity.ReportPatch{
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
		Status:  input.Status,
	}
	if err := srv.reportRepo.Update(ctx, id, patch); err != nil {
		return translateNotFound(err, repository.ErrReportNotFound, domainerrors.ErrReportNotFound, "failed to update report")
	}

	return nil
}

func (srv *reportService) MarkAsResolved(ctx context.Context, id uuid.UUID) error {
	status := entity.ReportStatusResolved

	return srv.Update(ctx, id, &usecase.UpdateReportInput{Status: &status})
}

func (srv *reportService) Remove(ctx context.Context, id uuid.UUID) error {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Removing report", slog.String("report_id", id.String()))

	return errors.Wrap(srv.reportRepo.Delete(ctx, id), "failed to remove report")
}

func (srv *reportService) view(ctx context.Context, report *entity.Report) *usecase.ReportView {
	return &usecase.ReportView{
		Report:   report,
		UserName: srv.enricher.userName(ctx, report.UserID, usecase.DeletedUserName),
	}
}
