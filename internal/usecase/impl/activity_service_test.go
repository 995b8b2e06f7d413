package impl

import (
	"context"
	"testing"
	"time"

	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	mockRepo "campnav/internal/mocks/repository"
	"campnav/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_ListUpcoming_WeekAhead(t *testing.T) {
	ctx := context.Background()
	activityRepo := mockRepo.NewMockActivityRepository(t)
	service := NewActivityService(activityRepo, newDiscardLogger())

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	service.(*activityService).now = fixedClock(now)

	activities := []*entity.Activity{{Title: "Bonfire"}}
	activityRepo.EXPECT().ListBefore(ctx, now.Add(7*24*time.Hour)).Return(activities, nil)

	got, err := service.ListUpcoming(ctx)

	require.NoError(t, err)
	assert.Equal(t, activities, got)
}

func TestActivityService_Update_ClearsCapacity(t *testing.T) {
	ctx := context.Background()
	activityRepo := mockRepo.NewMockActivityRepository(t)
	service := NewActivityService(activityRepo, newDiscardLogger())

	id := newID()
	activityRepo.EXPECT().
		Update(ctx, id, mock.MatchedBy(func(patch *entity.ActivityPatch) bool {
			return patch.Capacity.Clear() && *patch.Location == "Lake"
		})).
		Return(nil)

	err := service.Update(ctx, id, &usecase.UpdateActivityInput{
		Location: ptr("Lake"),
		Capacity: entity.NewNullable[int](nil),
	})

	require.NoError(t, err)
}

func TestActivityService_MissingActivity(t *testing.T) {
	ctx := context.Background()
	activityRepo := mockRepo.NewMockActivityRepository(t)
	service := NewActivityService(activityRepo, newDiscardLogger())

	id := newID()
	activityRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrActivityNotFound)
	activityRepo.EXPECT().Update(ctx, id, mock.AnythingOfType("*entity.ActivityPatch")).Return(repository.ErrActivityNotFound)

	activity, err := service.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, activity)

	err = service.Update(ctx, id, &usecase.UpdateActivityInput{Title: ptr("Moved")})
	assert.ErrorIs(t, err, domainerrors.ErrActivityNotFound)
}
