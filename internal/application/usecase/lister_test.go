package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedshare/internal/domain/model"
	"wedshare/internal/infrastructure/memory"
)

func TestListPhotos(t *testing.T) {
	t.Parallel()

	backend := memory.New()
	lister := NewLister(backend)

	photos, err := lister.ListPhotos(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)

	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		_, err := backend.CreatePhoto(context.Background(), model.PhotoInput{Filename: name})
		require.NoError(t, err)
	}

	photos, err = lister.ListPhotos(context.Background())
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, "c.jpg", photos[0].Filename)
	assert.Equal(t, "a.jpg", photos[2].Filename)
}
