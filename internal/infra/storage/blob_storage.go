// Package storage implements FileStorage on top of gocloud.dev/blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"campnav/config"
	"campnav/internal/domain/service"
	"campnav/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultContentType = "application/octet-stream"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	signed        bool
	signedOpts    *blob.SignedURLOptions
	logger        *slog.Logger
}

// StorageParams holds dependencies for FileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params StorageParams) (service.FileStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", redactBucketURL(cfg.BucketURL))
	}

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket", redactBucketURL(cfg.BucketURL)),
		slog.Bool("signed_urls", cfg.UseSignedURLs),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob storage")

			return bucket.Close()
		},
	})

	return newBlobStorage(bucket, cfg, params.Logger), nil
}

func newBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) *blobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		signed:        cfg.UseSignedURLs,
		signedOpts:    &blob.SignedURLOptions{Expiry: cfg.SignedURLExpiry},
		logger:        logger,
	}
}

// Upload writes content under a fresh key derived from a UUID and the file extension.
func (s *blobStorage) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	if contentType == "" {
		contentType = defaultContentType
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.WithStack(err)
	}
	key := id.String() + util.SafeExtension(filename)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	written, err := io.Copy(w, content)
	if err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "write blob")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "commit blob")
	}

	s.logger.Debug("File stored",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.String("size", util.FormatBytes(written)),
	)

	return key, nil
}

// URL resolves a storage key to a signed URL or to a path under the public base URL.
func (s *blobStorage) URL(ctx context.Context, ref string) (string, error) {
	if !validKey(ref) {
		return "", service.ErrFileNotFound
	}

	exists, err := s.bucket.Exists(ctx, ref)
	if err != nil {
		return "", errors.Wrap(err, "check blob")
	}
	if !exists {
		return "", service.ErrFileNotFound
	}

	if s.signed {
		signedURL, err := s.bucket.SignedURL(ctx, ref, s.signedOpts)
		if err != nil {
			return "", errors.Wrap(err, "sign blob url")
		}

		return signedURL, nil
	}

	return s.publicBaseURL + "/" + url.PathEscape(ref), nil
}

// Open returns a reader over the stored object.
func (s *blobStorage) Open(ctx context.Context, ref string) (*service.StoredFile, error) {
	if !validKey(ref) {
		return nil, service.ErrFileNotFound
	}

	r, err := s.bucket.NewReader(ctx, ref, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "open blob reader")
	}

	return &service.StoredFile{
		ReadCloser:  r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

// Keys are flat names generated by Upload.
func validKey(ref string) bool {
	return ref != "" && !strings.ContainsAny(ref, `/\`) && !strings.Contains(ref, "..")
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}

	return raw
}
