package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wedshare/internal/application/usecase/abstraction"
	"wedshare/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /api/photos/:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	photo, err := h.getter.GetPhoto(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return writeError(c, err, fetchPhotoMessage)
	}

	return c.JSON(http.StatusOK, photo)
}
