package impl

import (
	"context"
	"testing"

	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	mockRepo "campnav/internal/mocks/repository"
	"campnav/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_Create_StartsUnread(t *testing.T) {
	ctx := context.Background()
	reportRepo := mockRepo.NewMockReportRepository(t)
	service := NewReportService(reportRepo, mockRepo.NewMockUserRepository(t), newDiscardLogger())

	reportRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(report *entity.Report) bool {
			return report.Status == entity.ReportStatusUnread && report.Type == entity.ReportTypeBug
		})).
		Return(nil)

	_, err := service.Create(ctx, &usecase.CreateReportInput{
		UserID:  newID(),
		Type:    entity.ReportTypeBug,
		Title:   "Map crash",
		Message: "The map closes on open",
	})

	require.NoError(t, err)
}

func TestReportService_MarkAsResolved(t *testing.T) {
	ctx := context.Background()
	reportRepo := mockRepo.NewMockReportRepository(t)
	service := NewReportService(reportRepo, mockRepo.NewMockUserRepository(t), newDiscardLogger())

	resolved, missing := newID(), newID()
	reportRepo.EXPECT().
		Update(ctx, resolved, mock.MatchedBy(func(patch *entity.ReportPatch) bool {
			return *patch.Status == entity.ReportStatusResolved && patch.Title == nil
		})).
		Return(nil)
	reportRepo.EXPECT().Update(ctx, missing, mock.AnythingOfType("*entity.ReportPatch")).Return(repository.ErrReportNotFound)

	require.NoError(t, service.MarkAsResolved(ctx, resolved))
	assert.ErrorIs(t, service.MarkAsResolved(ctx, missing), domainerrors.ErrReportNotFound)
}

func TestReportService_List_DeletedAuthor(t *testing.T) {
	ctx := context.Background()
	reportRepo := mockRepo.NewMockReportRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewReportService(reportRepo, userRepo, newDiscardLogger())

	author := newID()
	reportRepo.EXPECT().List(ctx, "").Return([]*entity.Report{{UserID: author}}, nil)
	userRepo.EXPECT().FindByID(ctx, author).Return(nil, repository.ErrUserNotFound)

	views, err := service.List(ctx, "all")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, usecase.DeletedUserName, views[0].UserName)
}
