package impl

import (
	"context"
	"log/slog"

	deliverycontext "campnav/internal/delivery/context"
	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/repository"
	"campnav/internal/domain/service"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// maxEnrichConcurrency bounds the lookups running for a single list.
const maxEnrichConcurrency = 8

// enricher resolves display fields for list results: user names for foreign
// keys and URLs for stored images. Failures degrade to sentinels and never
// fail the surrounding call.
type enricher struct {
	userRepo repository.UserRepository
	storage  service.FileStorage
	logger   *slog.Logger
}

func newEnricher(userRepo repository.UserRepository, storage service.FileStorage, logger *slog.Logger) *enricher {
	return &enricher{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// userName returns the user's name, missing when the user no longer exists,
// or usecase.ErrorLoadingName when the lookup itself failed.
func (e *enricher) userName(ctx context.Context, id uuid.UUID, missing string) string {
	user, err := e.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return missing
		}

		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to resolve user name",
			slog.String("user_id", id.String()),
			slog.Any("error", err),
		)

		return usecase.ErrorLoadingName
	}

	return user.Name
}

// fileURL resolves an image field. External URLs pass through, empty fields
// and failed resolutions yield nil.
func (e *enricher) fileURL(ctx context.Context, ref string) *string {
	if ref == "" {
		return nil
	}
	if entity.IsExternalURL(ref) {
		return &ref
	}

	url, err := e.storage.URL(ctx, ref)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to resolve file URL",
			slog.String("storage_id", ref),
			slog.Any("error", err),
		)

		return nil
	}

	return &url
}

// enrichEach builds one view per record concurrently and keeps the input order.
// build must not fail; it is expected to degrade to sentinel values instead.
func enrichEach[E any, V any](ctx context.Context, records []*E, build func(context.Context, *E) *V) []*V {
	views := make([]*V, len(records))

	var eg errgroup.Group
	eg.SetLimit(maxEnrichConcurrency)

	for i, record := range records {
		eg.Go(func() error {
			views[i] = build(ctx, record)

			return nil
		})
	}
	_ = eg.Wait()

	return views
}

// translateNotFound maps a repository not-found sentinel to its domain error
// and wraps anything else with msg.
func translateNotFound(err, repoErr error, domainErr *domainerrors.BaseError, msg string) error {
	if errors.Is(err, repoErr) {
		return domainErr.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}
