package relational

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wedshare/internal/domain/errs"
	"wedshare/internal/domain/model"
)

const Name = "relational"

type photoRow struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Filename      string    `gorm:"not null"`
	LocationKind  string    `gorm:"size:16;not null"`
	LocationValue string    `gorm:"type:text;not null"`
	Description   *string   `gorm:"type:text"`
	GuestName     string    `gorm:"not null"`
	UploadedAt    time.Time `gorm:"index;not null"`
}

func (photoRow) TableName() string {
	return "photos"
}

func (r photoRow) toModel() model.Photo {
	return model.Photo{
		ID:          r.ID,
		Filename:    r.Filename,
		Location:    model.Location{Kind: model.LocationKind(r.LocationKind), Value: r.LocationValue},
		Description: r.Description,
		GuestName:   r.GuestName,
		UploadedAt:  r.UploadedAt.UTC(),
	}
}

type userRow struct {
	ID       string `gorm:"primaryKey;size:36"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}

func (userRow) TableName() string {
	return "users"
}

func (r userRow) toModel() model.User {
	return model.User{ID: r.ID, Username: r.Username, Password: r.Password}
}

// Backend stores metadata in SQL tables. It has no object storage.
type Backend struct {
	db *gorm.DB
}

func NewBackend(db *gorm.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) Name() string {
	return Name
}

func (b *Backend) CreatePhoto(ctx context.Context, input model.PhotoInput) (model.Photo, error) {
	if b.db == nil {
		return model.Photo{}, errs.ErrBackendUnavailable
	}

	photo := model.NewPhoto(uuid.NewString(), input, time.Now().UTC())
	row := photoRow{
		ID:            photo.ID,
		Filename:      photo.Filename,
		LocationKind:  string(photo.Location.Kind),
		LocationValue: photo.Location.Value,
		Description:   photo.Description,
		GuestName:     photo.GuestName,
		UploadedAt:    photo.UploadedAt,
	}

	if err := b.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Photo{}, fmt.Errorf("insert photo: %w", err)
	}

	return photo, nil
}

// GetAllPhotos returns every row, newest first.
func (b *Backend) GetAllPhotos(ctx context.Context) ([]model.Photo, error) {
	if b.db == nil {
		return nil, errs.ErrBackendUnavailable
	}

	var rows []photoRow
	if err := b.db.WithContext(ctx).Order("uploaded_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select photos: %w", err)
	}

	photos := make([]model.Photo, 0, len(rows))
	for _, r := range rows {
		photos = append(photos, r.toModel())
	}

	return photos, nil
}

func (b *Backend) GetPhoto(ctx context.Context, id string) (model.Photo, bool, error) {
	if b.db == nil {
		return model.Photo{}, false, errs.ErrBackendUnavailable
	}

	var row photoRow
	err := b.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Photo{}, false, nil
		}

		return model.Photo{}, false, fmt.Errorf("select photo: %w", err)
	}

	return row.toModel(), true, nil
}

func (b *Backend) UploadImage(_ context.Context, _ []byte, _, _ string) (model.Location, error) {
	return model.Location{}, fmt.Errorf("upload image: %w", errs.ErrNotImplemented)
}

func (b *Backend) DeleteImage(_ context.Context, _ string) error {
	return fmt.Errorf("delete image: %w", errs.ErrNotImplemented)
}

func (b *Backend) GetUser(ctx context.Context, id string) (model.User, bool, error) {
	return b.findUser(ctx, "id = ?", id)
}

func (b *Backend) GetUserByUsername(ctx context.Context, username string) (model.User, bool, error) {
	return b.findUser(ctx, "username = ?", username)
}

func (b *Backend) findUser(ctx context.Context, query string, arg string) (model.User, bool, error) {
	if b.db == nil {
		return model.User{}, false, errs.ErrBackendUnavailable
	}

	var row userRow
	err := b.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, false, nil
		}

		return model.User{}, false, fmt.Errorf("select user: %w", err)
	}

	return row.toModel(), true, nil
}

func (b *Backend) CreateUser(ctx context.Context, input model.UserInput) (model.User, error) {
	if b.db == nil {
		return model.User{}, errs.ErrBackendUnavailable
	}

	user, err := model.NewUser(uuid.NewString(), input)
	if err != nil {
		return model.User{}, err
	}

	row := userRow{ID: user.ID, Username: user.Username, Password: user.Password}
	if err := b.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}

	return row.toModel(), nil
}
