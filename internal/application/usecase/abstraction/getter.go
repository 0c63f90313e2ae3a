package abstraction

import (
	"context"

	"wedshare/internal/domain/model"
)

// Getter retrieves a single photo record.
type Getter interface {
	GetPhoto(ctx context.Context, id string) (model.Photo, error)
}
