package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"wedshare/internal/domain/entity"
	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
	"wedshare/internal/domain/repository/broker"
	"wedshare/internal/domain/repository/storage"
	"wedshare/pkg/logger"
	"wedshare/pkg/utils"
)

var (
	ImagesOnly      = []string{"image/"}
	ImagesAndVideos = []string{"image/", "video/"}
)

type Uploader struct {
	backend   storage.Backend
	publisher broker.Publisher
	families  []string
	maxBytes  int64
}

// NewUploader accepts media whose type starts with one of families, up to
// maxBytes each.
func NewUploader(backend storage.Backend, publisher broker.Publisher, families []string, maxBytes int64) *Uploader {
	return &Uploader{
		backend:   backend,
		publisher: publisher,
		families:  families,
		maxBytes:  maxBytes,
	}
}

func (u *Uploader) Accepts(contentType string) bool {
	return utils.HasMediaPrefix(contentType, u.families...)
}

func (u *Uploader) MaxBytes() int64 {
	return u.maxBytes
}

// Upload stores the bytes under a generated name, then records the photo.
// When the record can't be written the stored bytes are removed again.
func (u *Uploader) Upload(ctx context.Context, req entity.UploadRequest) (model.Photo, error) {
	if req.Data == nil {
		return model.Photo{}, errs.ErrMissingFile
	}

	if u.maxBytes > 0 && int64(len(req.Data)) > u.maxBytes {
		return model.Photo{}, errs.ErrPayloadTooLarge
	}

	if !u.Accepts(req.ContentType) {
		return model.Photo{}, fmt.Errorf("%w: %s", errs.ErrUnsupportedMediaType, req.ContentType)
	}

	contentType := utils.BaseMimeType(req.ContentType)
	if detected := mimetype.Detect(req.Data).String(); u.Accepts(detected) {
		contentType = utils.BaseMimeType(detected)
	}

	filename := uuid.NewString() + utils.GetExtensionFromMimeType(contentType)

	location, err := u.backend.UploadImage(ctx, req.Data, filename, contentType)
	if err != nil {
		logger.Error("failed to store upload", "filename", filename, "backend", u.backend.Name(), "err", err)

		return model.Photo{}, err
	}

	photo, err := u.backend.CreatePhoto(ctx, model.PhotoInput{
		Filename:    filename,
		Location:    location,
		Description: req.Description,
		GuestName:   req.GuestName,
	})
	if err != nil {
		if rmErr := u.backend.DeleteImage(ctx, filename); rmErr != nil && !errors.Is(rmErr, errs.ErrNotImplemented) {
			logger.Error("failed to remove stored bytes after record write failed", "filename", filename, "err", rmErr)
		}

		return model.Photo{}, err
	}

	announce(ctx, u.publisher, photo.ID)

	return photo, nil
}
