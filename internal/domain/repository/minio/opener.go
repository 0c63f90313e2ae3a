package minio

import (
	"context"
	"io"
)

type Opener interface {
	Open(ctx context.Context, filename string) (io.ReadCloser, string, error)
}
