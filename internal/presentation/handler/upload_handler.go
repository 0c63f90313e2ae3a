package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"wedshare/internal/application/usecase/abstraction"
	"wedshare/internal/domain/dto"
	"wedshare/internal/domain/errs"
	"wedshare/internal/presentation"
	"wedshare/internal/presentation/middleware"
)

// UploadHandler accepts one multipart file under a fixed form field.
type UploadHandler struct {
	uploader abstraction.Uploader
	field    string
	noun     string
	allowed  string
}

// NewUploadHandler serves the image-only upload route.
func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		field:    presentation.ImageField,
		noun:     "image",
		allowed:  "Only image files are allowed",
	}
}

// NewMediaUploadHandler serves the route that also takes videos.
func NewMediaUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		field:    presentation.MediaField,
		noun:     "media",
		allowed:  "Only image and video files are allowed",
	}
}

// HandleUpload handles POST /api/photos/upload and /api/photos/upload/media.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	req, err := readUploadForm(c.Request(), h.field, h.uploader.Accepts, h.uploader.MaxBytes())
	if err == nil {
		photo, uploadErr := h.uploader.Upload(c.Request().Context(), req)
		if uploadErr == nil {
			middleware.RecordUpload(h.field, "created")

			return c.JSON(http.StatusCreated, photo)
		}
		err = uploadErr
	}

	switch {
	case errors.Is(err, errs.ErrPayloadTooLarge):
		middleware.RecordUpload(h.field, "too_large")

		return c.JSON(http.StatusRequestEntityTooLarge, dto.Message{
			Message: fmt.Sprintf("File too large. Maximum size is %dMB.", h.uploader.MaxBytes()>>20),
		})

	case errors.Is(err, errs.ErrUnsupportedMediaType):
		middleware.RecordUpload(h.field, "rejected")

		return c.JSON(http.StatusBadRequest, dto.Message{Message: h.allowed})

	case errors.Is(err, errs.ErrMissingFile):
		middleware.RecordUpload(h.field, "rejected")

		return c.JSON(http.StatusBadRequest, dto.Message{Message: fmt.Sprintf("No %s file provided", h.noun)})

	case errors.Is(err, errMalformedForm):
		middleware.RecordUpload(h.field, "rejected")

		return c.JSON(http.StatusBadRequest, dto.Message{Message: "Upload error: " + err.Error()})

	default:
		middleware.RecordUpload(h.field, "failed")

		return writeError(c, err, uploadPhotoMessage)
	}
}
