package database

import (
	"context"

	"wedshare/internal/domain/model"
)

type PhotoWriter interface {
	Write(ctx context.Context, photo *model.Photo) error
}

// PhotoLister lists photos newest first.
type PhotoLister interface {
	ListAll(ctx context.Context) ([]model.Photo, error)
}

type PhotoRetriever interface {
	GetByID(ctx context.Context, id string) (*model.Photo, error)
}
