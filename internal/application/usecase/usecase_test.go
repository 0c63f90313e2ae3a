package usecase

import (
	"context"
	"errors"
	"sync"

	"wedshare/internal/domain/model"
	"wedshare/internal/infrastructure/memory"
)

type recordingPublisher struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (p *recordingPublisher) Publish(_ context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.ids = append(p.ids, id)

	return nil
}

// flakyBackend fails selected operations of an otherwise working memory backend.
type flakyBackend struct {
	*memory.Backend
	createErr error
	uploadErr error
	deleted   []string
}

func (f *flakyBackend) CreatePhoto(ctx context.Context, in model.PhotoInput) (model.Photo, error) {
	if f.createErr != nil {
		return model.Photo{}, f.createErr
	}

	return f.Backend.CreatePhoto(ctx, in)
}

func (f *flakyBackend) UploadImage(ctx context.Context, data []byte, filename, contentType string) (model.Location, error) {
	if f.uploadErr != nil {
		return model.Location{}, f.uploadErr
	}

	return f.Backend.UploadImage(ctx, data, filename, contentType)
}

func (f *flakyBackend) DeleteImage(_ context.Context, filename string) error {
	f.deleted = append(f.deleted, filename)

	return nil
}

var errWrite = errors.New("write failed")

var jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x80, 0xc3}
