// Package usecase contains the application-specific business rules.
package usecase

import (
	"campnav/internal/domain/entity"
)

// Display values substituted when a referenced record cannot be shown.
const (
	UnknownName      = "Unknown"
	DeletedUserName  = "Deleted User"
	DeletedRoomOwner = "Unknown (Deleted)"
	ErrorLoadingName = "Error Loading"
)

// UserView is a user with its image resolved to a URL.
type UserView struct {
	*entity.User
	ImageURL *string `json:"image_url"`
}

// RoomView is a room with its occupant's display name.
// OccupantName is nil when the room has no occupant.
type RoomView struct {
	*entity.Room
	OccupantName *string `json:"occupant_name"`
}

// OrderView is an order with its owner's display name.
type OrderView struct {
	*entity.Order
	UserName string `json:"user_name"`
}

// ProductView is a product with its image resolved to a URL.
type ProductView struct {
	*entity.Product
	ImageURL *string `json:"image_url"`
}

// AnnouncementView is an announcement with its cover image resolved to a URL.
type AnnouncementView struct {
	*entity.Announcement
	CoverImageURL *string `json:"cover_image_url"`
}

// HousekeepingView is an assignment with the housekeeper's display name.
type HousekeepingView struct {
	*entity.HousekeepingAssignment
	HousekeeperName string `json:"housekeeper_name"`
}

// RequestView is a service request with the requester's name and image URL.
// UserName is empty when the view was built for a single requester.
type RequestView struct {
	*entity.ServiceRequest
	UserName string  `json:"user_name,omitempty"`
	ImageURL *string `json:"image_url"`
}

// ReportView is a report with the reporter's display name.
type ReportView struct {
	*entity.Report
	UserName string `json:"user_name"`
}

// RoleCount is one bar of the users-by-role chart.
type RoleCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// UserStats summarizes the user collection for the dashboard.
type UserStats struct {
	ByRole         []RoleCount `json:"by_role"`
	ActiveVisitors int         `json:"active_visitors"`
	TotalUsers     int         `json:"total_users"`
}
