package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
	"wedshare/pkg/logger"
)

type PhotoRetriever struct {
	db *Database
}

func NewPhotoRetriever(db *Database) *PhotoRetriever {
	return &PhotoRetriever{db: db}
}

// GetByID returns errs.ErrNotFound when no photo has the given id.
func (r *PhotoRetriever) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var photo model.Photo
	err := r.db.collection(PhotoCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}

		logger.Error("failed to retrieve photo by id", "id", id, "err", err)

		return nil, err
	}

	return &photo, nil
}
