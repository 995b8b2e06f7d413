package postgres

import (
	"context"
	"testing"
	"time"

	"campnav/internal/domain/entity"
	"campnav/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_StatusFilter(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	for _, status := range []string{entity.StatusPending, entity.StatusCompleted, entity.StatusCompleted} {
		require.NoError(t, repo.Create(ctx, &entity.Order{
			UserID: owner, Source: "restaurant", Summary: "2x coffee", Total: 8.5, Status: status,
		}))
	}

	completed, err := repo.List(ctx, entity.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 2)
	for _, order := range completed {
		assert.Equal(t, entity.StatusCompleted, order.Status)
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderRepository_FindAfterCreate(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	order := &entity.Order{UserID: uuid.New(), Source: "shop", Summary: "towel", Total: 12, Status: entity.StatusPending}
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.UserID, got.UserID)
	assert.Equal(t, "towel", got.Summary)
	assert.InDelta(t, 12.0, got.Total, 0.0001)

	require.NoError(t, repo.Update(ctx, order.ID, &entity.OrderPatch{Status: ptr(entity.StatusInProgress)}))
	got, err = repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, got.Status)
	assert.Equal(t, "shop", got.Source)
}

func TestProductRepository_FilterPrecedence(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	products := []*entity.Product{
		{Name: "Massage", Category: "wellness", Service: "spa", Price: 60, Stock: 10, IsAvailable: true},
		{Name: "Latte", Category: "drinks", Service: "cafe", Price: 4, Stock: 100, IsAvailable: true},
		{Name: "Herbal tea", Category: "drinks", Service: "spa", Price: 3, Stock: 50},
	}
	for _, p := range products {
		require.NoError(t, repo.Create(ctx, p))
	}

	bySpa, err := repo.List(ctx, entity.ProductFilter{Category: "drinks", Service: "spa"})
	require.NoError(t, err)
	require.Len(t, bySpa, 2)
	for _, p := range bySpa {
		assert.Equal(t, "spa", p.Service)
	}

	drinks, err := repo.List(ctx, entity.ProductFilter{Category: "drinks"})
	require.NoError(t, err)
	assert.Len(t, drinks, 2)

	all, err := repo.List(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.False(t, all[0].IsAvailable)
}

func TestAnnouncementRepository_PriorityFilterAndDelete(t *testing.T) {
	repo := NewAnnouncementRepository(newTestDB(t))
	ctx := context.Background()

	high := &entity.Announcement{Title: "Storm", Content: "Stay inside", Author: "Ops", Priority: entity.PriorityHigh}
	low := &entity.Announcement{Title: "Bingo", Content: "Tonight", Author: "Fun", Priority: entity.PriorityLow, CoverImage: "https://example.com/b.png"}
	require.NoError(t, repo.Create(ctx, high))
	require.NoError(t, repo.Create(ctx, low))

	got, err := repo.List(ctx, entity.PriorityHigh)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Storm", got[0].Title)

	require.NoError(t, repo.Delete(ctx, high.ID))
	_, err = repo.FindByID(ctx, high.ID)
	assert.ErrorIs(t, err, repository.ErrAnnouncementNotFound)
}

func TestRequestRepository_ListByUser(t *testing.T) {
	repo := NewRequestRepository(newTestDB(t))
	ctx := context.Background()
	guest := uuid.New()

	mine := &entity.ServiceRequest{UserID: guest, Type: "maintenance", RoomNumber: "5", Description: "Leak", Priority: entity.PriorityHigh, Status: entity.StatusPending}
	newer := &entity.ServiceRequest{UserID: guest, Type: "cleaning", RoomNumber: "5", Description: "Towels", Priority: entity.PriorityLow, Status: entity.StatusPending}
	other := &entity.ServiceRequest{UserID: uuid.New(), Type: "cleaning", RoomNumber: "9", Description: "Sheets", Priority: entity.PriorityLow, Status: entity.StatusCompleted}
	for _, r := range []*entity.ServiceRequest{mine, newer, other} {
		require.NoError(t, repo.Create(ctx, r))
	}

	got, err := repo.ListByUser(ctx, guest)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, mine.ID, got[1].ID)
}

func TestHousekeepingAndReportRepository_Update(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	housekeeping := NewHousekeepingRepository(db)
	assignment := &entity.HousekeepingAssignment{
		HousekeeperID: uuid.New(), RoomNumber: "Lobby", ServiceType: "deep_clean",
		Status:        entity.StatusPending, AssignedAt: time.Now().UTC(),
	}
	require.NoError(t, housekeeping.Create(ctx, assignment))
	require.NoError(t, housekeeping.Update(ctx, assignment.ID, &entity.HousekeepingPatch{Status: ptr(entity.StatusCompleted)}))
	gotAssignment, err := housekeeping.FindByID(ctx, assignment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, gotAssignment.Status)
	assert.Equal(t, "Lobby", gotAssignment.RoomNumber)

	reports := NewReportRepository(db)
	report := &entity.Report{UserID: uuid.New(), Type: entity.ReportTypeBug, Title: "App crash", Message: "On login", Status: entity.ReportStatusUnread}
	require.NoError(t, reports.Create(ctx, report))
	require.NoError(t, reports.Update(ctx, report.ID, &entity.ReportPatch{Status: ptr(entity.ReportStatusResolved)}))

	unread, err := reports.List(ctx, entity.ReportStatusUnread)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestActivityRepository_Ordering(t *testing.T) {
	repo := NewActivityRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	later := &entity.Activity{Title: "Hike", Date: now.Add(5 * 24 * time.Hour), Time: "08:00", Location: "Trailhead"}
	sooner := &entity.Activity{Title: "Campfire", Date: now.Add(24 * time.Hour), Time: "20:00", Location: "Fire pit", Capacity: ptr(30)}
	farAway := &entity.Activity{Title: "Regatta", Date: now.Add(30 * 24 * time.Hour), Time: "10:00", Location: "Lake"}
	for _, a := range []*entity.Activity{later, sooner, farAway} {
		require.NoError(t, repo.Create(ctx, a))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Hike", "Campfire", "Regatta"}, []string{all[0].Title, all[1].Title, all[2].Title})

	upcoming, err := repo.ListBefore(ctx, now.Add(7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Campfire", upcoming[0].Title)
	assert.Equal(t, "Hike", upcoming[1].Title)

	require.NoError(t, repo.Update(ctx, sooner.ID, &entity.ActivityPatch{Capacity: entity.NewNullable[int](nil)}))
	got, err := repo.FindByID(ctx, sooner.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Capacity)
}
