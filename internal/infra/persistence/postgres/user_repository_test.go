package postgres

import (
	"context"
	"testing"
	"time"

	"campnav/internal/domain/entity"
	"campnav/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	start := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	user := &entity.User{
		Name:          "Dana",
		Email:         "dana@example.com",
		PasswordHash:  "hash",
		Role:          entity.RoleVisitor,
		DurationStart: &start,
		IsOnSite:      ptr(true),
		CampStaffID:   "",
	}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.FindByEmail(ctx, "dana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Dana", got.Name)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, entity.RoleVisitor, got.Role)
	require.NotNil(t, got.DurationStart)
	assert.True(t, start.Equal(*got.DurationStart))
	assert.Nil(t, got.DurationEnd)
	require.NotNil(t, got.IsOnSite)
	assert.True(t, *got.IsOnSite)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "A", Email: "same@example.com"}))
	err := repo.Create(ctx, &entity.User{Name: "B", Email: "same@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserEmailTaken)
}

func TestUserRepository_ListByRole(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "Staff", Email: "s@example.com", Role: entity.RoleStaff}))
	require.NoError(t, repo.Create(ctx, &entity.User{Name: "Guest", Email: "g@example.com", Role: entity.RoleVisitor}))

	visitors, err := repo.List(ctx, entity.RoleVisitor)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "Guest", visitors[0].Name)

	everyone, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, everyone, 2)
	assert.Equal(t, "Guest", everyone[0].Name)
}

func TestUserRepository_UpdateClearsNullableFields(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	end := time.Date(2026, 6, 8, 10, 0, 0, 0, time.UTC)

	user := &entity.User{Name: "Kim", Email: "kim@example.com", PasswordHash: "keep", DurationEnd: &end}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Update(ctx, user.ID, &entity.UserPatch{
		Name:        ptr("Kim Lee"),
		DurationEnd: entity.NewNullable[time.Time](nil),
	}))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kim Lee", got.Name)
	assert.Equal(t, "keep", got.PasswordHash)
	assert.Nil(t, got.DurationEnd)
}
