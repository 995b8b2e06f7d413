package entity

// Workflow statuses shared by orders, requests and housekeeping assignments.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Room statuses. Maintenance is a manual override independent of occupancy.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Report statuses.
const (
	ReportStatusUnread   = "unread"
	ReportStatusResolved = "resolved"
)

// Priorities used by announcements and requests.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)
