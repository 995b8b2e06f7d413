package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report types submitted from the guest app.
const (
	ReportTypeBug      = "bug"
	ReportTypeFeedback = "feedback"
	ReportTypeIncident = "incident"
)

// Report is feedback or an incident submitted by a user.
type Report struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportPatch struct {
	Type    *string
	Title   *string
	Message *string
	Status  *string
}
