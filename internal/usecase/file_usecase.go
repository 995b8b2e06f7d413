package usecase

import (
	"context"
	"io"

	"campnav/internal/domain/service"
)

// FileUsecase stores uploaded images and serves stored objects.
type FileUsecase interface {
	// Upload stores the content and returns its storage reference.
	Upload(ctx context.Context, input *UploadFileInput) (*UploadedFile, error)
	// Open returns the stored object, or nil without error when it does not exist.
	Open(ctx context.Context, ref string) (*service.StoredFile, error)
}

// UploadFileInput describes one uploaded file.
type UploadFileInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadedFile is the result of a successful upload.
type UploadedFile struct {
	StorageID string  `json:"storage_id"`
	URL       *string `json:"url"`
}
