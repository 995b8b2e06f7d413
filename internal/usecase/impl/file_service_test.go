package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/service"
	mockSvc "campnav/internal/mocks/service"
	"campnav/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFileService(t *testing.T) (usecase.FileUsecase, *mockSvc.MockFileStorage) {
	storage := mockSvc.NewMockFileStorage(t)
	fileService, err := NewFileService(newTestConfig(""), storage, newDiscardLogger())
	require.NoError(t, err)

	return fileService, storage
}

func requireErrorCode(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr), "expected a domain error, got %v", err)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}

func TestFileService_Upload_Success(t *testing.T) {
	fileService, storage := createTestFileService(t)
	ctx := context.Background()

	storage.EXPECT().
		Upload(ctx, "pool.png", "image/png", mock.Anything).
		RunAndReturn(func(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))

			return "0192-pool.png", nil
		})
	storage.EXPECT().URL(ctx, "0192-pool.png").Return("/files/0192-pool.png", nil)

	uploaded, err := fileService.Upload(ctx, &usecase.UploadFileInput{
		Filename:    "pool.png",
		ContentType: "image/png",
		Size:        9,
		Content:     strings.NewReader("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "0192-pool.png", uploaded.StorageID)
	assert.Equal(t, "/files/0192-pool.png", *uploaded.URL)
}

func TestFileService_Upload_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("missing content", func(t *testing.T) {
		fileService, _ := createTestFileService(t)

		_, err := fileService.Upload(ctx, &usecase.UploadFileInput{Filename: "a.png"})

		requireErrorCode(t, err, domainerrors.ErrFileRequired)
	})

	t.Run("declared size over limit", func(t *testing.T) {
		fileService, _ := createTestFileService(t)

		_, err := fileService.Upload(ctx, &usecase.UploadFileInput{
			Filename: "big.png",
			Size:     2048,
			Content:  strings.NewReader(strings.Repeat("x", 2048)),
		})

		requireErrorCode(t, err, domainerrors.ErrFileTooLarge)
	})

	t.Run("stream over limit", func(t *testing.T) {
		fileService, storage := createTestFileService(t)

		storage.EXPECT().
			Upload(ctx, "big.png", "", mock.Anything).
			RunAndReturn(func(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
				_, err := io.ReadAll(content)

				return "", errors.Wrap(err, "copy failed")
			})

		_, err := fileService.Upload(ctx, &usecase.UploadFileInput{
			Filename: "big.png",
			Content:  strings.NewReader(strings.Repeat("x", 4096)),
		})

		requireErrorCode(t, err, domainerrors.ErrFileTooLarge)
	})

	t.Run("storage failure", func(t *testing.T) {
		fileService, storage := createTestFileService(t)

		storage.EXPECT().Upload(ctx, "a.png", "", mock.Anything).Return("", errors.New("bucket offline"))

		_, err := fileService.Upload(ctx, &usecase.UploadFileInput{
			Filename: "a.png",
			Content:  strings.NewReader("tiny"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrFileUploadFailed)
	})
}

func TestFileService_Open_Missing(t *testing.T) {
	fileService, storage := createTestFileService(t)
	ctx := context.Background()

	storage.EXPECT().Open(ctx, "gone.png").Return(nil, service.ErrFileNotFound)

	file, err := fileService.Open(ctx, "gone.png")

	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestLimitedReader(t *testing.T) {
	r := &limitedReader{r: strings.NewReader("12345"), remaining: 5}
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))
	assert.False(t, r.exceeded)

	r = &limitedReader{r: strings.NewReader("123456"), remaining: 5}
	_, err = io.ReadAll(r)
	assert.ErrorIs(t, err, errUploadTooLarge)
	assert.True(t, r.exceeded)
}
