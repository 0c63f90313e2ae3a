package minio

import (
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"wedshare/internal/domain/errs"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-tests"
)

func setupMinio(t *testing.T) *Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MinIO container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := New(&ClientConfig{
		AccessKey: TestAccessKey,
		SecretKey: TestSecretKey,
		Endpoint:  endpoint,
	})
	if err != nil {
		t.Fatal("Failed to create minio client:", err)
	}

	return client
}

func TestUploadOpenRemove(t *testing.T) {
	t.Parallel()
	client := setupMinio(t)
	ctx := context.Background()

	require.NoError(t, client.MinioClient.MakeBucket(ctx, BucketName, minio.MakeBucketOptions{}))

	uploader := NewUploader(client, &UploaderConfig{Timeout: 10000, Bucket: BucketName})
	opener := NewOpener(client, BucketName)
	remover := NewRemover(client, BucketName, &RemoverConfig{Timeout: 10000})

	data := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0xff, 0xfe, 0x00}

	url, err := uploader.Upload(ctx, data, "a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, client.BaseURL()+"/"+BucketName+"/photos/a.png", url)

	body, contentType, err := opener.Open(ctx, "a.png")
	require.NoError(t, err)
	got, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, data, got)
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, remover.Remove(ctx, "a.png"))

	_, _, err = opener.Open(ctx, "a.png")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUploadMissingBucket(t *testing.T) {
	t.Parallel()
	client := setupMinio(t)

	uploader := NewUploader(client, &UploaderConfig{Timeout: 10000, Bucket: "does-not-exist"})

	_, err := uploader.Upload(context.Background(), []byte("x"), "a.jpg", "image/jpeg")
	assert.ErrorIs(t, err, errs.ErrBucketNotFound)
}

func TestPublicURLUsesConfiguredBase(t *testing.T) {
	t.Parallel()

	client := &Client{Endpoint: "localhost:9000"}
	uploader := NewUploader(client, &UploaderConfig{Bucket: "wedding", PublicBaseURL: "https://storage.example.com/"})

	assert.Equal(t, "https://storage.example.com/wedding/photos/x.jpg", uploader.PublicURL("x.jpg"))
	assert.Equal(t, "http://localhost:9000", client.BaseURL())

	client.Secure = true
	assert.Equal(t, "https://localhost:9000", client.BaseURL())
}
