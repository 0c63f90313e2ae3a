package minio

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"wedshare/pkg/logger"
)

// ObjectPrefix is the folder every photo is stored under.
const ObjectPrefix = "photos/"

type Client struct {
	MinioClient *minio.Client
	Endpoint    string
	Secure      bool
}

func New(cfg *ClientConfig) (*Client, error) {
	logger.Info("connecting to object store", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		logger.Error("failed to initialize object store client", "err", err)

		return nil, err
	}

	return &Client{
		MinioClient: client,
		Endpoint:    cfg.Endpoint,
		Secure:      cfg.Secure,
	}, nil
}

// BaseURL is the scheme-qualified endpoint.
func (c *Client) BaseURL() string {
	if c.Secure {
		return "https://" + c.Endpoint
	}

	return "http://" + c.Endpoint
}

func objectName(filename string) string {
	return ObjectPrefix + filename
}
