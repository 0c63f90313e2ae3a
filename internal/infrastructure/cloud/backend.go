package cloud

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
	"wedshare/internal/domain/repository/database"
	"wedshare/internal/domain/repository/minio"
)

const Name = "document"

// Metadata groups the document-store repositories. A nil *Metadata leaves the
// backend unbound for metadata operations.
type Metadata struct {
	PhotoWriter    database.PhotoWriter
	PhotoLister    database.PhotoLister
	PhotoRetriever database.PhotoRetriever
	UserWriter     database.UserWriter
	UserRetriever  database.UserRetriever
}

// Objects groups the object-store repositories. A nil *Objects leaves the
// backend without image storage.
type Objects struct {
	Uploader minio.Uploader
	Remover  minio.Remover
	Opener   minio.Opener
}

// Backend stores metadata in a document database and bytes in an object store.
type Backend struct {
	meta    *Metadata
	objects *Objects
}

func NewBackend(meta *Metadata, objects *Objects) *Backend {
	return &Backend{
		meta:    meta,
		objects: objects,
	}
}

func (b *Backend) Name() string {
	return Name
}

func (b *Backend) CreatePhoto(ctx context.Context, input model.PhotoInput) (model.Photo, error) {
	if b.meta == nil {
		return model.Photo{}, errs.ErrBackendUnavailable
	}

	photo := model.NewPhoto(uuid.NewString(), input, time.Now().UTC().Truncate(time.Millisecond))
	if err := b.meta.PhotoWriter.Write(ctx, &photo); err != nil {
		return model.Photo{}, err
	}

	return photo, nil
}

// GetAllPhotos returns an empty list when unbound instead of failing.
func (b *Backend) GetAllPhotos(ctx context.Context) ([]model.Photo, error) {
	if b.meta == nil {
		return []model.Photo{}, nil
	}

	return b.meta.PhotoLister.ListAll(ctx)
}

func (b *Backend) GetPhoto(ctx context.Context, id string) (model.Photo, bool, error) {
	if b.meta == nil {
		return model.Photo{}, false, errs.ErrBackendUnavailable
	}

	photo, err := b.meta.PhotoRetriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Photo{}, false, nil
		}

		return model.Photo{}, false, err
	}

	return *photo, true, nil
}

func (b *Backend) UploadImage(ctx context.Context, data []byte, filename, contentType string) (model.Location, error) {
	if b.objects == nil {
		return model.Location{}, errs.ErrStorageUnconfigured
	}

	url, err := b.objects.Uploader.Upload(ctx, data, filename, contentType)
	if err != nil {
		return model.Location{}, err
	}

	return model.Location{Kind: model.LocationURL, Value: url}, nil
}

func (b *Backend) DeleteImage(ctx context.Context, filename string) error {
	if b.objects == nil {
		return errs.ErrStorageUnconfigured
	}

	return b.objects.Remover.Remove(ctx, filename)
}

// OwnsImage is true only for the public URL an upload of filename produced.
// Photos created with an external URL are fetched from that URL instead.
func (b *Backend) OwnsImage(loc model.Location, filename string) bool {
	if b.objects == nil || loc.Kind != model.LocationURL || filename == "" {
		return false
	}

	return loc.Value == b.objects.Uploader.PublicURL(filename)
}

func (b *Backend) OpenImage(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	if b.objects == nil {
		return nil, "", errs.ErrStorageUnconfigured
	}

	return b.objects.Opener.Open(ctx, filename)
}

func (b *Backend) GetUser(ctx context.Context, id string) (model.User, bool, error) {
	if b.meta == nil {
		return model.User{}, false, errs.ErrBackendUnavailable
	}

	return found(b.meta.UserRetriever.GetByID(ctx, id))
}

func (b *Backend) GetUserByUsername(ctx context.Context, username string) (model.User, bool, error) {
	if b.meta == nil {
		return model.User{}, false, errs.ErrBackendUnavailable
	}

	return found(b.meta.UserRetriever.GetByUsername(ctx, username))
}

func (b *Backend) CreateUser(ctx context.Context, input model.UserInput) (model.User, error) {
	if b.meta == nil {
		return model.User{}, errs.ErrBackendUnavailable
	}

	user, err := model.NewUser(uuid.NewString(), input)
	if err != nil {
		return model.User{}, err
	}

	if err := b.meta.UserWriter.Write(ctx, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func found(user *model.User, err error) (model.User, bool, error) {
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, false, nil
		}

		return model.User{}, false, err
	}

	return *user, true, nil
}
