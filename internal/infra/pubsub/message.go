// Package pubsub publishes announcement events to Google Pub/Sub, to a local
// push endpoint during development, or nowhere.
package pubsub

import (
	"encoding/json"

	"campnav/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute names, usable in subscription filters.
const (
	attrAnnouncementID = "announcement_id"
	attrPriority       = "priority"
	attrRequestID      = "request_id"
)

// encodeAnnouncement returns the JSON payload and attributes shared by every publisher.
func encodeAnnouncement(event *service.AnnouncementEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode announcement event")
	}

	attributes := map[string]string{
		attrAnnouncementID: event.AnnouncementID,
		attrPriority:       event.Priority,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
