package abstraction

import (
	"context"

	"wedshare/internal/domain/model"
)

type Lister interface {
	ListPhotos(ctx context.Context) ([]model.Photo, error)
}
