// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"outfind/internal/cache"
	"outfind/internal/models"
	"outfind/internal/observability"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDCached(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// EnsureUser creates the row for a verified identity if it does not exist
	// yet. Existing rows are left untouched.
	EnsureUser(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetStylePreferences(ctx context.Context, id string) ([]string, error)
	UpdateStylePreferences(ctx context.Context, id string, preferences []string) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	defer observability.TrackQuery("get_by_id", "users")()

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewStoreError("users.get_by_id", err)
	}
	return &user, nil
}

func (r *userRepository) GetByIDCached(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		loaded, loadErr := r.GetByID(ctx, id)
		if loadErr != nil {
			return loadErr
		}
		user = *loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStoreError("users.get_by_username", err)
	}
	return &user, nil
}

func (r *userRepository) EnsureUser(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(user).Error
	if err != nil {
		return models.NewStoreError("users.ensure", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewStoreError("users.update", err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// GetStylePreferences is the feed composer's preference lookup. An unknown
// user is an explicit NOT_FOUND, never an empty preference set.
func (r *userRepository) GetStylePreferences(ctx context.Context, id string) ([]string, error) {
	defer observability.TrackQuery("get_style_preferences", "users")()

	var user models.User
	err := r.db.WithContext(ctx).
		Select("id", "style_preferences").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewStoreError("users.get_style_preferences", err)
	}
	return user.StylePreferences, nil
}

func (r *userRepository) UpdateStylePreferences(ctx context.Context, id string, preferences []string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("style_preferences", datatypes.NewJSONSlice(preferences))
	if res.Error != nil {
		return models.NewStoreError("users.update_style_preferences", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}
