package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wedshare/internal/application/usecase/abstraction"
	"wedshare/internal/domain/dto"
	"wedshare/pkg/logger"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /api/photos requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	photos, err := h.lister.ListPhotos(c.Request().Context())
	if err != nil {
		logger.Error("failed to list photos", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: fetchPhotosMessage})
	}

	return c.JSON(http.StatusOK, photos)
}
