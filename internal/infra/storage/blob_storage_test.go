package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"campnav/config"
	"campnav/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return newBlobStorage(bucket, &config.StorageConfig{PublicBaseURL: "/files/"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobStorage_UploadAndOpen(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	key, err := store.Upload(ctx, "Sunset.PNG", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotContains(t, key, "/")

	file, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer file.Close()

	body, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", file.ContentType)
	assert.EqualValues(t, len("png-bytes"), file.Size)
}

func TestBlobStorage_UploadDefaultsContentType(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	key, err := store.Upload(ctx, "notes", "", strings.NewReader("x"))
	require.NoError(t, err)

	file, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, defaultContentType, file.ContentType)
}

func TestBlobStorage_URL(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	key, err := store.Upload(ctx, "a.jpg", "image/jpeg", strings.NewReader("jpeg"))
	require.NoError(t, err)

	got, err := store.URL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "/files/"+key, got)
}

func TestBlobStorage_Missing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, ref := range []string{"", "missing.png", "../etc/passwd", "a/b.png"} {
		_, err := store.URL(ctx, ref)
		assert.ErrorIs(t, err, service.ErrFileNotFound, ref)

		_, err = store.Open(ctx, ref)
		assert.ErrorIs(t, err, service.ErrFileNotFound, ref)
	}
}
