package usecase

import (
	"context"

	"wedshare/internal/domain/model"
	"wedshare/internal/domain/repository/storage"
)

// Lister implements the Lister abstraction for the photo gallery.
type Lister struct {
	photos storage.PhotoStore
}

func NewLister(photos storage.PhotoStore) *Lister {
	return &Lister{
		photos: photos,
	}
}

// ListPhotos returns every photo, newest first. Never nil.
func (l *Lister) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	photos, err := l.photos.GetAllPhotos(ctx)
	if err != nil {
		return nil, err
	}

	if photos == nil {
		photos = []model.Photo{}
	}

	return photos, nil
}
