package impl

import (
	"context"
	"io"
	"log/slog"

	"campnav/config"
	deliverycontext "campnav/internal/delivery/context"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/service"
	"campnav/internal/usecase"
	"campnav/internal/util"

	"github.com/pkg/errors"
)

// fileService implements the FileUsecase interface.
type fileService struct {
	storage       service.FileStorage
	maxUploadSize int64
	logger        *slog.Logger
}

// NewFileService is the constructor for fileService.
func NewFileService(cfg *config.Config, storage service.FileStorage, logger *slog.Logger) (usecase.FileUsecase, error) {
	maxUploadSize, err := util.ParseByteSize(cfg.Storage.MaxUploadSize)
	if err != nil {
		return nil, errors.Wrap(err, "invalid storage.maxUploadSize")
	}

	return &fileService{
		storage:       storage,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}, nil
}

// Upload stores an image and returns its storage reference together with a
// display URL when one can be resolved.
func (srv *fileService) Upload(ctx context.Context, input *usecase.UploadFileInput) (*usecase.UploadedFile, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input == nil || input.Content == nil {
		return nil, domainerrors.ErrFileRequired
	}
	if input.Size > srv.maxUploadSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails("max " + util.FormatBytes(srv.maxUploadSize))
	}

	content := &limitedReader{r: input.Content, remaining: srv.maxUploadSize}
	ref, err := srv.storage.Upload(ctx, input.Filename, input.ContentType, content)
	if err != nil {
		if content.exceeded {
			return nil, domainerrors.ErrFileTooLarge.WithDetails("max " + util.FormatBytes(srv.maxUploadSize))
		}
		logger.Error("File upload failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrFileUploadFailed, err.Error())
	}

	logger.Info("File uploaded", slog.String("storage_id", ref), slog.String("size", util.FormatBytes(input.Size)))

	uploaded := &usecase.UploadedFile{StorageID: ref}
	if url, err := srv.storage.URL(ctx, ref); err == nil {
		uploaded.URL = &url
	} else {
		logger.Warn("Failed to resolve uploaded file URL", slog.String("storage_id", ref), slog.Any("error", err))
	}

	return uploaded, nil
}

func (srv *fileService) Open(ctx context.Context, ref string) (*service.StoredFile, error) {
	file, err := srv.storage.Open(ctx, ref)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to open file")
	}

	return file, nil
}

var errUploadTooLarge = errors.New("upload exceeds size limit")

// limitedReader fails once more than remaining bytes have been read.
type limitedReader struct {
	r         io.Reader
	remaining int64
	exceeded  bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		l.exceeded = true

		return 0, errUploadTooLarge
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}

	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		l.exceeded = true

		return n, errUploadTooLarge
	}

	return n, err
}
