package usecase

import (
	"context"

	"wedshare/internal/domain/dto"
	"wedshare/internal/domain/model"
	"wedshare/internal/domain/repository/broker"
	"wedshare/internal/domain/repository/storage"
	"wedshare/pkg/logger"
)

// Creator records photos whose bytes already live elsewhere.
type Creator struct {
	photos    storage.PhotoStore
	publisher broker.Publisher
}

func NewCreator(photos storage.PhotoStore, publisher broker.Publisher) *Creator {
	return &Creator{
		photos:    photos,
		publisher: publisher,
	}
}

// CreatePhoto expects an already validated request. imageData wins over
// imageUrl when both are sent.
func (c *Creator) CreatePhoto(ctx context.Context, req dto.CreatePhotoRequest) (model.Photo, error) {
	ref := ""
	switch {
	case req.ImageData != nil && *req.ImageData != "":
		ref = *req.ImageData
	case req.ImageURL != nil:
		ref = *req.ImageURL
	}

	input := model.PhotoInput{
		Filename:    req.Filename,
		Location:    model.LocationOf(ref),
		Description: req.Description,
	}
	if req.GuestName != nil {
		input.GuestName = *req.GuestName
	}

	photo, err := c.photos.CreatePhoto(ctx, input)
	if err != nil {
		return model.Photo{}, err
	}

	announce(ctx, c.publisher, photo.ID)

	return photo, nil
}

// announce publishes a created photo id. Failures only get logged.
func announce(ctx context.Context, publisher broker.Publisher, id string) {
	if err := publisher.Publish(ctx, id); err != nil {
		logger.Error("failed to publish photo event", "id", id, "err", err)
	}
}
