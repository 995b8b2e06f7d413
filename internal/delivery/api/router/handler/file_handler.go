package handler

import (
	"log/slog"
	"net/http"

	"campnav/internal/delivery/api/response"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// uploadField is the multipart field carrying the file.
const uploadField = "file"

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	FileUC usecase.FileUsecase
	Logger *slog.Logger
}

// FileHandler uploads images and streams stored files.
type FileHandler struct {
	fileUC usecase.FileUsecase
	logger *slog.Logger
}

// NewFileHandler is the constructor for FileHandler
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{
		fileUC: params.FileUC,
		logger: params.Logger,
	}
}

// Upload handles POST /files as multipart/form-data and responds with the
// storage reference to save on the record.
func (h *FileHandler) Upload(c echo.Context) error {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrFileRequired)
	}

	src, err := header.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrFileRequired)
	}
	defer src.Close()

	uploaded, err := h.fileUC.Upload(c.Request().Context(), &usecase.UploadFileInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     src,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, uploaded)
}

// Serve streams a stored file by key.
func (h *FileHandler) Serve(c echo.Context) error {
	file, err := h.fileUC.Open(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if file == nil {
		return response.NotFound(c, "FILE_NOT_FOUND", "File not found")
	}
	defer file.Close()

	c.Response().Header().Set("Cache-Control", "private, max-age=3600")
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, file.ContentType, file)
}
