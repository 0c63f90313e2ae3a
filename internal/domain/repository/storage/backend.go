package storage

import (
	"context"
	"io"

	"wedshare/internal/domain/model"
)

// PhotoStore persists photo metadata. Records are immutable once created.
type PhotoStore interface {
	CreatePhoto(ctx context.Context, input model.PhotoInput) (model.Photo, error)
	// GetAllPhotos returns every photo ordered by UploadedAt descending.
	GetAllPhotos(ctx context.Context) ([]model.Photo, error)
	// GetPhoto reports false for unknown ids; that is not an error.
	GetPhoto(ctx context.Context, id string) (model.Photo, bool, error)
}

// ImageStore persists image bytes. Deleting bytes never touches metadata.
type ImageStore interface {
	UploadImage(ctx context.Context, data []byte, filename, contentType string) (model.Location, error)
	DeleteImage(ctx context.Context, filename string) error
}

type UserStore interface {
	GetUser(ctx context.Context, id string) (model.User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, bool, error)
	CreateUser(ctx context.Context, input model.UserInput) (model.User, error)
}

// Backend is one interchangeable storage implementation.
type Backend interface {
	PhotoStore
	ImageStore
	UserStore
	Name() string
}

// ImageOpener is implemented by backends that can stream stored bytes back
// without going through the public URL.
type ImageOpener interface {
	// OwnsImage reports whether loc is where the backend stored filename.
	OwnsImage(loc model.Location, filename string) bool
	OpenImage(ctx context.Context, filename string) (io.ReadCloser, string, error)
}
