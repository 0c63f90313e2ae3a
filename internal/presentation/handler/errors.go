package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"wedshare/internal/domain/dto"
	"wedshare/internal/domain/errs"
	"wedshare/pkg/logger"
)

const (
	invalidPhotoMessage  = "Invalid photo data"
	notFoundMessage      = "Photo not found"
	storageConfigMessage = "Storage configuration error. Please check object storage settings."
	fetchPhotosMessage   = "Failed to fetch photos"
	fetchPhotoMessage    = "Failed to fetch photo"
	createPhotoMessage   = "Failed to create photo"
	uploadPhotoMessage   = "Failed to upload photo"
	downloadPhotoMessage = "Failed to download photo"
	apiNotFoundMessage   = "API endpoint not found"
)

// writeError maps a use case error onto its status and body. Anything not
// recognized is logged and answered with fallback.
func writeError(c echo.Context, err error, fallback string) error {
	var verr *errs.ValidationError

	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, validationResponse(verr))

	case errors.Is(err, errs.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.Message{Message: notFoundMessage})

	case errs.IsStorageConfig(err):
		logger.Error("object storage misconfigured", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: storageConfigMessage})

	default:
		logger.Error(fallback, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: fallback})
	}
}

func validationResponse(verr *errs.ValidationError) dto.ValidationErrorResponse {
	fields := make([]dto.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, dto.FieldError{Field: f.Field, Message: f.Message})
	}

	return dto.ValidationErrorResponse{Message: invalidPhotoMessage, Errors: fields}
}

// HandleAPINotFound answers unknown /api routes.
func HandleAPINotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": apiNotFoundMessage})
}
