package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wedshare/internal/domain/model"
	"wedshare/pkg/logger"
)

type PhotoLister struct {
	db *Database
}

func NewPhotoLister(db *Database) *PhotoLister {
	return &PhotoLister{db: db}
}

func (l *PhotoLister) ListAll(ctx context.Context) ([]model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})

	cursor, err := l.db.collection(PhotoCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("failed to list photos", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	photos := make([]model.Photo, 0)
	if err = cursor.All(ctx, &photos); err != nil {
		logger.Error("failed to decode photos", "err", err)

		return nil, err
	}

	return photos, nil
}
