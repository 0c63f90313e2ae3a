package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())

	return fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, hostPort)
}

func connect(t *testing.T) *Database {
	t.Helper()

	db, err := Connect(Config{
		URI:               setupMongo(t),
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func TestPhotoWriteListRetrieve(t *testing.T) {
	t.Parallel()
	db := connect(t)

	writer := NewPhotoWriter(db)
	lister := NewPhotoLister(db)
	retriever := NewPhotoRetriever(db)

	base := time.Now().UTC().Truncate(time.Millisecond)
	desc := "cake cutting"
	photos := []model.Photo{
		{
			ID: uuid.NewString(), Filename: "1.jpg", GuestName: "Ayşe",
			Location:   model.Location{Kind: model.LocationURL, Value: "https://cdn.example/1.jpg"},
			UploadedAt: base.Add(-2 * time.Minute),
		},
		{
			ID: uuid.NewString(), Filename: "2.jpg", GuestName: model.AnonymousGuest, Description: &desc,
			Location:   model.Location{Kind: model.LocationURL, Value: "https://cdn.example/2.jpg"},
			UploadedAt: base,
		},
		{
			ID: uuid.NewString(), Filename: "3.jpg", GuestName: "Mehmet",
			Location:   model.Location{Kind: model.LocationInline, Value: "data:image/jpeg;base64,AA=="},
			UploadedAt: base.Add(-time.Minute),
		},
	}

	for i := range photos {
		require.NoError(t, writer.Write(context.Background(), &photos[i]))
	}

	listed, err := lister.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "2.jpg", listed[0].Filename)
	assert.Equal(t, "3.jpg", listed[1].Filename)
	assert.Equal(t, "1.jpg", listed[2].Filename)

	got, err := retriever.GetByID(context.Background(), photos[1].ID)
	require.NoError(t, err)
	assert.Equal(t, photos[1].ID, got.ID)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	assert.True(t, photos[1].UploadedAt.Equal(got.UploadedAt))

	_, err = retriever.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListAllEmpty(t *testing.T) {
	t.Parallel()
	db := connect(t)

	listed, err := NewPhotoLister(db).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestUserStore(t *testing.T) {
	t.Parallel()
	db := connect(t)
	store := NewUserStore(db)

	user := &model.User{ID: uuid.NewString(), Username: "bride", Password: "secret"}
	require.NoError(t, store.Write(context.Background(), user))

	got, err := store.GetByUsername(context.Background(), "bride")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = store.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bride", got.Username)

	_, err = store.GetByUsername(context.Background(), "groom")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.Error(t, store.Write(context.Background(), &model.User{ID: uuid.NewString(), Username: "bride"}))
}
