package abstraction

import (
	"context"

	"wedshare/internal/domain/entity"
	"wedshare/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, req entity.UploadRequest) (model.Photo, error)
	// Accepts reports whether a declared media type may be uploaded.
	Accepts(contentType string) bool
	MaxBytes() int64
}
