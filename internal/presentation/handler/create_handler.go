package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"wedshare/internal/application/usecase/abstraction"
	"wedshare/internal/domain/dto"
	"wedshare/internal/domain/errs"
)

type CreateHandler struct {
	creator abstraction.Creator
}

func NewCreateHandler(creator abstraction.Creator) *CreateHandler {
	return &CreateHandler{
		creator: creator,
	}
}

// HandleCreate handles POST /api/photos requests carrying a JSON photo.
func (h *CreateHandler) HandleCreate(c echo.Context) error {
	var req dto.CreatePhotoRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, bindError(err), createPhotoMessage)
	}

	if err := c.Validate(&req); err != nil {
		return writeError(c, err, createPhotoMessage)
	}

	photo, err := h.creator.CreatePhoto(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err, createPhotoMessage)
	}

	return c.JSON(http.StatusCreated, photo)
}

// bindError turns a body decoding failure into field errors.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.NewValidationError(errs.FieldError{
			Field:   typeErr.Field,
			Message: "Expected " + typeErr.Type.String() + ", received " + typeErr.Value,
		})
	}

	return errs.NewValidationError(errs.FieldError{Field: "body", Message: "Malformed JSON body"})
}
