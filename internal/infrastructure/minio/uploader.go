package minio

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"wedshare/internal/domain/errs"
	"wedshare/pkg/logger"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
	baseURL     string
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = client.BaseURL()
	}

	return &Uploader{
		minioClient: client.MinioClient,
		cfg:         cfg,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Upload writes data under photos/<filename>, marks it publicly readable and
// returns its deterministic public URL.
func (u *Uploader) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	exists, err := u.minioClient.BucketExists(ctx, u.cfg.Bucket)
	if err != nil {
		logger.Error("failed to check bucket", "bucket", u.cfg.Bucket, "err", err)

		return "", fmt.Errorf("check bucket %s: %w", u.cfg.Bucket, err)
	}

	if !exists {
		return "", fmt.Errorf("%w: %s", errs.ErrBucketNotFound, u.cfg.Bucket)
	}

	name := objectName(filename)
	_, err = u.minioClient.PutObject(ctx, u.cfg.Bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			UserMetadata: map[string]string{"x-amz-acl": "public-read"},
		})
	if err != nil {
		logger.Error("failed to upload object", "object", name, "err", err)

		return "", fmt.Errorf("upload %s: %w", name, err)
	}

	return u.PublicURL(filename), nil
}

func (u *Uploader) PublicURL(filename string) string {
	return fmt.Sprintf("%s/%s/%s", u.baseURL, u.cfg.Bucket, objectName(filename))
}
