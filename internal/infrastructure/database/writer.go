package database

import (
	"context"

	"wedshare/internal/domain/model"
	"wedshare/pkg/logger"
)

type PhotoWriter struct {
	db *Database
}

func NewPhotoWriter(db *Database) *PhotoWriter {
	return &PhotoWriter{db: db}
}

func (w *PhotoWriter) Write(ctx context.Context, photo *model.Photo) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	if _, err := w.db.collection(PhotoCollection).InsertOne(ctx, photo); err != nil {
		logger.Error("failed to write photo", "id", photo.ID, "err", err)

		return err
	}

	return nil
}
