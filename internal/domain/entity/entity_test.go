package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_IsActiveVisitor(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Second)
	after := now.Add(time.Second)
	ended := now.Add(-2 * time.Second)

	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "inside stay window", user: User{Role: RoleVisitor, DurationStart: &before, DurationEnd: &after}, want: true},
		{name: "open ended stay", user: User{Role: RoleVisitor, DurationStart: &before}, want: true},
		{name: "stay ends now", user: User{Role: RoleVisitor, DurationStart: &before, DurationEnd: &now}, want: true},
		{name: "stay not started", user: User{Role: RoleVisitor, DurationStart: &after}, want: false},
		{name: "stay ended", user: User{Role: RoleVisitor, DurationStart: &ended, DurationEnd: &before}, want: false},
		{name: "no start", user: User{Role: RoleVisitor}, want: false},
		{name: "staff", user: User{Role: RoleStaff, DurationStart: &before}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.IsActiveVisitor(now))
		})
	}
}

func TestFilterValue(t *testing.T) {
	assert.Equal(t, "", FilterValue("", FilterAll))
	assert.Equal(t, "", FilterValue("all", FilterAll))
	assert.Equal(t, "completed", FilterValue("completed", FilterAll))
	assert.Equal(t, "", FilterValue("none", FilterNone))
	assert.Equal(t, "all", FilterValue("all", FilterNone))
}

func TestNullable_UnmarshalJSON(t *testing.T) {
	type payload struct {
		OccupantID Nullable[uuid.UUID] `json:"occupant_id"`
	}

	t.Run("absent key is not set", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.OccupantID.Set)
	})

	t.Run("explicit null clears", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"occupant_id":null}`), &p))
		assert.True(t, p.OccupantID.Clear())
	})

	t.Run("value is set", func(t *testing.T) {
		id := uuid.New()
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"occupant_id":"`+id.String()+`"}`), &p))
		require.NotNil(t, p.OccupantID.Value)
		assert.Equal(t, id, *p.OccupantID.Value)
	})
}

func TestOccupancyPatch(t *testing.T) {
	id := uuid.New()

	occupied := OccupancyPatch(&id)
	assert.Equal(t, RoomStatusOccupied, *occupied.Status)
	assert.Equal(t, &id, occupied.OccupantID.Value)

	vacated := OccupancyPatch(nil)
	assert.Equal(t, RoomStatusAvailable, *vacated.Status)
	assert.True(t, vacated.OccupantID.Clear())
}

func TestIsExternalURL(t *testing.T) {
	assert.True(t, IsExternalURL("https://example.com/x.png"))
	assert.True(t, IsExternalURL("HTTP://example.com/x.png"))
	assert.False(t, IsExternalURL("0196f0b2-1c2d-7e3f-8a9b-0123456789ab.png"))
	assert.False(t, IsExternalURL(""))
}
