package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"wedshare/internal/application/usecase/abstraction"
	"wedshare/internal/presentation"
	"wedshare/pkg/logger"
)

type DownloadHandler struct {
	downloader abstraction.Downloader
}

func NewDownloadHandler(downloader abstraction.Downloader) *DownloadHandler {
	return &DownloadHandler{
		downloader: downloader,
	}
}

var quoteStripper = strings.NewReplacer(`"`, "", `\`, "", "\r", "", "\n", "")

// HandleDownload handles GET /api/photos/:id/download requests.
func (h *DownloadHandler) HandleDownload(c echo.Context) error {
	d, err := h.downloader.Download(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return writeError(c, err, downloadPhotoMessage)
	}
	defer func() {
		if err := d.Body.Close(); err != nil {
			logger.Warn("can't close download stream", "err", err)
		}
	}()

	contentType := d.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	c.Response().Header().Set(presentation.DispositionKey,
		fmt.Sprintf(`attachment; filename="%s"`, quoteStripper.Replace(d.Filename)))

	return c.Stream(http.StatusOK, contentType, d.Body)
}
