package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"wedshare/internal/domain/entity"
	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
	"wedshare/internal/domain/repository/storage"
	"wedshare/pkg/utils"
)

// Downloader streams a photo's bytes back from wherever its location points.
type Downloader struct {
	photos storage.PhotoStore
	opener storage.ImageOpener
	client *http.Client
}

// NewDownloader reads through the backend for images the backend stored
// itself and fetches every other URL with client.
func NewDownloader(backend storage.Backend, client *http.Client) *Downloader {
	d := &Downloader{
		photos: backend,
		client: client,
	}

	if opener, ok := backend.(storage.ImageOpener); ok {
		d.opener = opener
	}

	return d
}

func (d *Downloader) Download(ctx context.Context, id string) (entity.Download, error) {
	photo, ok, err := d.photos.GetPhoto(ctx, id)
	if err != nil {
		return entity.Download{}, err
	}

	if !ok {
		return entity.Download{}, fmt.Errorf("%w: %s", errs.ErrNotFound, id)
	}

	switch {
	case photo.Location.Kind == model.LocationInline:
		mediaType, data, err := utils.DecodeDataURL(photo.Location.Value)
		if err != nil {
			return entity.Download{}, fmt.Errorf("decode inline image %s: %w", id, err)
		}

		return entity.Download{
			Filename:    photo.Filename,
			ContentType: mediaType,
			Body:        io.NopCloser(bytes.NewReader(data)),
		}, nil

	case d.opener != nil && d.opener.OwnsImage(photo.Location, photo.Filename):
		body, contentType, err := d.opener.OpenImage(ctx, photo.Filename)
		if err != nil {
			return entity.Download{}, err
		}

		return entity.Download{Filename: photo.Filename, ContentType: contentType, Body: body}, nil

	case photo.Location.Value == "":
		return entity.Download{}, fmt.Errorf("%w: %s has no image", errs.ErrNotFound, id)

	default:
		return d.fetch(ctx, photo)
	}
}

func (d *Downloader) fetch(ctx context.Context, photo model.Photo) (entity.Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photo.Location.Value, http.NoBody)
	if err != nil {
		return entity.Download{}, fmt.Errorf("build image request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return entity.Download{}, fmt.Errorf("fetch image: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return entity.Download{}, fmt.Errorf("%w: remote image of %s", errs.ErrNotFound, photo.ID)
		}

		return entity.Download{}, errors.New("unexpected status fetching image: " + resp.Status)
	}

	return entity.Download{
		Filename:    photo.Filename,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}, nil
}
