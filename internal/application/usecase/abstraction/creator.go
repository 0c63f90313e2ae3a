package abstraction

import (
	"context"

	"wedshare/internal/domain/dto"
	"wedshare/internal/domain/model"
)

type Creator interface {
	CreatePhoto(ctx context.Context, req dto.CreatePhotoRequest) (model.Photo, error)
}
