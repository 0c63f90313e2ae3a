package usecase

import (
	"context"
	"fmt"

	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
	"wedshare/internal/domain/repository/storage"
)

// Getter implements the Getter abstraction for retrieving photo information.
type Getter struct {
	photos storage.PhotoStore
}

func NewGetter(photos storage.PhotoStore) *Getter {
	return &Getter{
		photos: photos,
	}
}

// GetPhoto turns an absent record into errs.ErrNotFound.
func (g *Getter) GetPhoto(ctx context.Context, id string) (model.Photo, error) {
	photo, ok, err := g.photos.GetPhoto(ctx, id)
	if err != nil {
		return model.Photo{}, err
	}

	if !ok {
		return model.Photo{}, fmt.Errorf("%w: %s", errs.ErrNotFound, id)
	}

	return photo, nil
}
