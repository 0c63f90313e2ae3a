package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
	"wedshare/pkg/utils"
)

const (
	Name = "memory"

	// DefaultMediaType tags inline payloads whose content type is unknown.
	DefaultMediaType = "image/jpeg"
)

// Backend keeps users and photos in process memory. Image bytes are inlined
// into the photo record as data URLs, so nothing survives a restart.
type Backend struct {
	mu     sync.RWMutex
	users  map[string]model.User
	photos map[string]model.Photo
	last   time.Time
	now    func() time.Time
}

func New() *Backend {
	return &Backend{
		users:  make(map[string]model.User),
		photos: make(map[string]model.Photo),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (b *Backend) Name() string {
	return Name
}

func (b *Backend) CreatePhoto(_ context.Context, input model.PhotoInput) (model.Photo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	photo := model.NewPhoto(uuid.NewString(), input, b.nextTimestamp())
	b.photos[photo.ID] = photo

	return photo, nil
}

// nextTimestamp keeps UploadedAt strictly increasing even when the clock
// reports the same instant twice. Callers must hold mu.
func (b *Backend) nextTimestamp() time.Time {
	t := b.now()
	if !t.After(b.last) {
		t = b.last.Add(time.Nanosecond)
	}
	b.last = t

	return t
}

func (b *Backend) GetAllPhotos(_ context.Context) ([]model.Photo, error) {
	b.mu.RLock()
	photos := make([]model.Photo, 0, len(b.photos))
	for _, p := range b.photos {
		photos = append(photos, p)
	}
	b.mu.RUnlock()

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].UploadedAt.After(photos[j].UploadedAt)
	})

	return photos, nil
}

func (b *Backend) GetPhoto(_ context.Context, id string) (model.Photo, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.photos[id]

	return p, ok, nil
}

// UploadImage never reaches an external store: the bytes come back as a data URL.
func (b *Backend) UploadImage(_ context.Context, data []byte, _, contentType string) (model.Location, error) {
	mediaType := utils.BaseMimeType(contentType)
	if mediaType == "" {
		mediaType = DefaultMediaType
	}

	return model.Location{
		Kind:  model.LocationInline,
		Value: utils.EncodeDataURL(mediaType, data),
	}, nil
}

// DeleteImage is a no-op; inline bytes live inside the photo record.
func (b *Backend) DeleteImage(_ context.Context, _ string) error {
	return nil
}

func (b *Backend) GetUser(_ context.Context, id string) (model.User, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	u, ok := b.users[id]

	return u, ok, nil
}

func (b *Backend) GetUserByUsername(_ context.Context, username string) (model.User, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, u := range b.users {
		if u.Username == username {
			return u, true, nil
		}
	}

	return model.User{}, false, nil
}

func (b *Backend) CreateUser(_ context.Context, input model.UserInput) (model.User, error) {
	u, err := model.NewUser(uuid.NewString(), input)
	if err != nil {
		return model.User{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.users {
		if existing.Username == u.Username {
			return model.User{}, fmt.Errorf("%w: %s", errs.ErrUsernameTaken, u.Username)
		}
	}

	b.users[u.ID] = u

	return u, nil
}
