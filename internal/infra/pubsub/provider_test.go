package pubsub

import (
	"context"
	"testing"

	"campnav/config"
	"campnav/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()
	logger := newDiscardLogger()

	t.Run("noop by default", func(t *testing.T) {
		for _, cfg := range []*config.PubSubConfig{nil, {}, {Provider: "noop"}} {
			publisher, err := newPublisher(ctx, cfg, logger)
			require.NoError(t, err)
			assert.IsType(t, &noopPublisher{}, publisher)
			assert.NoError(t, publisher.PublishAnnouncementEvent(ctx, &service.AnnouncementEvent{AnnouncementID: "a-1"}))
		}
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/events"}, logger)
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
		assert.NoError(t, publisher.Close())
	})

	t.Run("local without endpoint", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local"}, logger)
		assert.Error(t, err)
	})

	t.Run("google without topic", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "google", ProjectID: "camp"}, logger)
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
		assert.ErrorContains(t, err, "kafka")
	})
}
