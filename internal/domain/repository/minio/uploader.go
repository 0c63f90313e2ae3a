package minio

import "context"

type Uploader interface {
	// Upload stores data and returns its public URL.
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
	PublicURL(filename string) string
}
