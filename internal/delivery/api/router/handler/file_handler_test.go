package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"campnav/internal/domain/service"
	mockUC "campnav/internal/mocks/usecase"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFileHandler(t *testing.T) (*FileHandler, *mockUC.MockFileUsecase) {
	fileUC := mockUC.NewMockFileUsecase(t)

	return NewFileHandler(FileHandlerParams{FileUC: fileUC, Logger: newDiscardLogger()}), fileUC
}

func multipartRequest(t *testing.T, filename, contentType, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestFileHandler_Upload(t *testing.T) {
	t.Run("stores the file", func(t *testing.T) {
		h, fileUC := newTestFileHandler(t)
		url := "/files/0192-tent.png"
		fileUC.EXPECT().Upload(mock.Anything, mock.MatchedBy(func(in *usecase.UploadFileInput) bool {
			return in.Filename == "tent.png" && in.ContentType == "image/png" && in.Size == 4
		})).Return(&usecase.UploadedFile{StorageID: "0192-tent.png", URL: &url}, nil)

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(multipartRequest(t, "tent.png", "image/png", "\x89PNG"), rec)
		require.NoError(t, h.Upload(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var body usecase.UploadedFile
		decodeData(t, rec, &body)
		assert.Equal(t, "0192-tent.png", body.StorageID)
		require.NotNil(t, body.URL)
		assert.Equal(t, url, *body.URL)
	})

	t.Run("missing file", func(t *testing.T) {
		h, _ := newTestFileHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/files", `{}`)
		require.NoError(t, h.Upload(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, rec).Code)
	})
}

func TestFileHandler_Serve(t *testing.T) {
	t.Run("streams stored object", func(t *testing.T) {
		h, fileUC := newTestFileHandler(t)
		fileUC.EXPECT().Open(mock.Anything, "0192-tent.png").Return(&service.StoredFile{
			ReadCloser:  io.NopCloser(strings.NewReader("image-bytes")),
			ContentType: "image/png",
			Size:        11,
		}, nil)

		c, rec := newContext(http.MethodGet, "/files/0192-tent.png", "")
		c.SetParamNames("key")
		c.SetParamValues("0192-tent.png")
		require.NoError(t, h.Serve(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "image-bytes", rec.Body.String())
	})

	t.Run("missing object", func(t *testing.T) {
		h, fileUC := newTestFileHandler(t)
		fileUC.EXPECT().Open(mock.Anything, "gone.png").Return(nil, nil)

		c, rec := newContext(http.MethodGet, "/files/gone.png", "")
		c.SetParamNames("key")
		c.SetParamValues("gone.png")
		require.NoError(t, h.Serve(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "FILE_NOT_FOUND", decodeError(t, rec).Code)
	})
}
