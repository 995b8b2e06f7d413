package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campnav/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.AnnouncementEvent{
		RequestID:      "req-1",
		AnnouncementID: "a-1",
		Title:          "Pool closed",
		Author:         "Front desk",
		Priority:       "high",
		CreatedAt:      time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishAnnouncementEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "a-1", received.Message.MessageID)
	assert.Equal(t, "high", received.Message.Attributes["priority"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AnnouncementEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Pool closed", decoded.Title)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishAnnouncementEvent(context.Background(), &service.AnnouncementEvent{AnnouncementID: "a-2"})
	assert.Error(t, err)
}
