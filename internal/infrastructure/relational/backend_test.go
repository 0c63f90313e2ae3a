package relational

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Connect(Config{
		DSN:               fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		ConnectionTimeout: 1000,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = Close(db)
	})

	return db
}

func TestCreateAndGetPhoto(t *testing.T) {
	t.Parallel()

	b := NewBackend(newTestDB(t))
	ctx := context.Background()
	start := time.Now().UTC()

	photo, err := b.CreatePhoto(ctx, model.PhotoInput{
		Filename:  "a.jpg",
		Location:  model.LocationOf("https://cdn.example/a.jpg"),
		GuestName: "Ayşe",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, photo.ID)
	assert.False(t, photo.UploadedAt.Before(start))

	got, ok, err := b.GetPhoto(ctx, photo.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, photo.ID, got.ID)
	assert.Equal(t, "a.jpg", got.Filename)
	assert.Equal(t, "Ayşe", got.GuestName)
	assert.Nil(t, got.Description)
	assert.Equal(t, model.LocationURL, got.Location.Kind)
	assert.True(t, photo.UploadedAt.Equal(got.UploadedAt))

	_, ok, err = b.GetPhoto(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

// GetAllPhotos must return the full result set, not only its first row.
func TestGetAllPhotosReturnsEveryRow(t *testing.T) {
	t.Parallel()

	b := NewBackend(newTestDB(t))
	ctx := context.Background()

	photos, err := b.GetAllPhotos(ctx)
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)

	const n = 5
	for i := 0; i < n; i++ {
		_, err := b.CreatePhoto(ctx, model.PhotoInput{
			Filename: fmt.Sprintf("%d.jpg", i),
			Location: model.LocationOf("https://cdn.example/x.jpg"),
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	photos, err = b.GetAllPhotos(ctx)
	require.NoError(t, err)
	require.Len(t, photos, n)

	for i := 1; i < len(photos); i++ {
		assert.False(t, photos[i].UploadedAt.After(photos[i-1].UploadedAt))
	}
	assert.Equal(t, "4.jpg", photos[0].Filename)
	assert.Equal(t, "0.jpg", photos[n-1].Filename)
}

func TestImageOperationsNotImplemented(t *testing.T) {
	t.Parallel()

	b := NewBackend(newTestDB(t))

	_, err := b.UploadImage(context.Background(), []byte("x"), "a.jpg", "image/jpeg")
	assert.ErrorIs(t, err, errs.ErrNotImplemented)

	assert.ErrorIs(t, b.DeleteImage(context.Background(), "a.jpg"), errs.ErrNotImplemented)
}

func TestUsers(t *testing.T) {
	t.Parallel()

	b := NewBackend(newTestDB(t))
	ctx := context.Background()

	u, err := b.CreateUser(ctx, model.UserInput{Username: "bride", Password: "pw"})
	require.NoError(t, err)

	got, ok, err := b.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, u, got)

	got, ok, err = b.GetUserByUsername(ctx, "bride")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, u.ID, got.ID)

	_, ok, err = b.GetUserByUsername(ctx, "groom")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = b.CreateUser(ctx, model.UserInput{Username: "bride", Password: "other"})
	assert.Error(t, err)
}

func TestUnboundBackend(t *testing.T) {
	t.Parallel()

	b := NewBackend(nil)

	_, err := b.CreatePhoto(context.Background(), model.PhotoInput{Filename: "a.jpg"})
	assert.ErrorIs(t, err, errs.ErrBackendUnavailable)

	_, err = b.GetAllPhotos(context.Background())
	assert.ErrorIs(t, err, errs.ErrBackendUnavailable)
}

// capturingDialector keeps the *gorm.DB so a test can inspect its pool.
type capturingDialector struct {
	gorm.Dialector
	db *gorm.DB
}

func (c *capturingDialector) Initialize(db *gorm.DB) error {
	c.db = db

	return c.Dialector.Initialize(db)
}

func TestConnectClosesPoolWhenMigrationFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "photos.db")

	setup, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, setup.Exec("CREATE VIEW photos AS SELECT 1 AS id").Error)
	require.NoError(t, Close(setup))

	dialector := &capturingDialector{Dialector: sqlite.Open(path)}
	db, err := connect(dialector, Config{ConnectionTimeout: 1000})
	require.Error(t, err)
	assert.Nil(t, db)

	require.NotNil(t, dialector.db)
	sqlDB, err := dialector.db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "pool must be closed after a failed migration")
}

func TestDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dsn  string
		name string
	}{
		{"postgres://user:pw@localhost:5432/wedding", "postgres"},
		{"postgresql://localhost/wedding", "postgres"},
		{"host=localhost user=wedding dbname=wedding", "postgres"},
		{"sqlite://photos.db", "sqlite"},
		{"file:photos?mode=memory", "sqlite"},
		{"photos.db", "sqlite"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.dsn, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, Dialector(tt.dsn).Name())
		})
	}
}
