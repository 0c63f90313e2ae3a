package database

import (
	"context"

	"wedshare/internal/domain/model"
)

type UserWriter interface {
	Write(ctx context.Context, user *model.User) error
}

type UserRetriever interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
