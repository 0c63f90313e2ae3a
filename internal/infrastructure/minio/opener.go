package minio

import (
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"

	"wedshare/internal/domain/errs"
)

type Opener struct {
	minioClient *minio.Client
	bucket      string
}

func NewOpener(client *Client, bucket string) *Opener {
	return &Opener{
		minioClient: client.MinioClient,
		bucket:      bucket,
	}
}

// Open streams a stored photo. The caller closes the reader.
func (o *Opener) Open(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	obj, err := o.minioClient.GetObject(ctx, o.bucket, objectName(filename), minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}

	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()

		if minio.ToErrorResponse(err).StatusCode == http.StatusNotFound {
			return nil, "", errs.ErrNotFound
		}

		return nil, "", err
	}

	return obj, info.ContentType, nil
}
