package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrFileNotFound is returned when a storage reference points to nothing.
var ErrFileNotFound = errors.New("file not found")

// StoredFile is an open handle to a stored object.
type StoredFile struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// FileStorage stores uploaded images and resolves storage references to URLs.
type FileStorage interface {
	// Upload stores the content and returns its opaque storage reference.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// URL returns a displayable URL for ref, or ErrFileNotFound.
	URL(ctx context.Context, ref string) (string, error)

	// Open streams the stored object, or returns ErrFileNotFound.
	Open(ctx context.Context, ref string) (*StoredFile, error)
}
