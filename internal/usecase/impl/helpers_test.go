package impl

import (
	"io"
	"log/slog"
	"time"

	"campnav/config"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(adminPassword string) *config.Config {
	cfg := &config.Config{
		Storage: &config.StorageConfig{
			MaxUploadSize: "1KB",
		},
	}
	cfg.Admin.Password = adminPassword

	return cfg
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T {
	return &v
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
