package abstraction

import (
	"context"

	"wedshare/internal/domain/entity"
)

type Downloader interface {
	Download(ctx context.Context, id string) (entity.Download, error)
}
