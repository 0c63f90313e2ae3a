package router

import (
	"net/http"

	"wedshare/internal/application/usecase"
	"wedshare/internal/domain/repository/broker"
	"wedshare/internal/domain/repository/storage"
	"wedshare/internal/presentation/handler"
)

// NewHandlers wires every route's handler to backend. maxBytes caps a single
// uploaded file; client fetches remote images for downloads.
func NewHandlers(backend storage.Backend, publisher broker.Publisher, maxBytes int64, client *http.Client) Handlers {
	return Handlers{
		List:   handler.NewListHandler(usecase.NewLister(backend)),
		Get:    handler.NewGetHandler(usecase.NewGetter(backend)),
		Create: handler.NewCreateHandler(usecase.NewCreator(backend, publisher)),
		Upload: handler.NewUploadHandler(
			usecase.NewUploader(backend, publisher, usecase.ImagesOnly, maxBytes)),
		UploadMedia: handler.NewMediaUploadHandler(
			usecase.NewUploader(backend, publisher, usecase.ImagesAndVideos, maxBytes)),
		Download: handler.NewDownloadHandler(usecase.NewDownloader(backend, client)),
		Health:   handler.NewHealthHandler(backend.Name()),
	}
}
