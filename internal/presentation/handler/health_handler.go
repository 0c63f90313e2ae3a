package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"wedshare/internal/domain/dto"
)

// isoMillis matches the timestamp layout browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

type HealthHandler struct {
	storage string
	now     func() time.Time
}

// NewHealthHandler reports storage as the active backend name.
func NewHealthHandler(storage string) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		now:     time.Now,
	}
}

// HandleHealth handles GET /health requests.
func (h *HealthHandler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.Health{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(isoMillis),
		Storage:   h.storage,
	})
}
