package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"wedshare/pkg/logger"
)

type Remover struct {
	minioClient *minio.Client
	bucket      string
	cfg         *RemoverConfig
}

func NewRemover(client *Client, bucket string, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: client.MinioClient,
		bucket:      bucket,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, filename string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	err := r.minioClient.RemoveObject(ctx, r.bucket, objectName(filename), minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("failed to remove object", "filename", filename, "err", err)

		return err
	}

	return nil
}
