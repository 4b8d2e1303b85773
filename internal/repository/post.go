// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"outfind/internal/models"
	"outfind/internal/observability"

	"gorm.io/gorm"
)

// FeedFilter describes the two feed match criteria: tag overlap with the
// requester's style preferences, and authorship by a followed user.
type FeedFilter struct {
	Tags      []string
	AuthorIDs []string
}

// Empty reports whether no criterion can match anything.
func (f FeedFilter) Empty() bool {
	return len(f.Tags) == 0 && len(f.AuthorIDs) == 0
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*models.Post, error)
	// GetFeedPage returns posts matching any filter criterion, joined with
	// author username and profile image, newest first (post id breaks ties).
	// A single SELECT over posts keeps the result inherently deduplicated.
	GetFeedPage(ctx context.Context, filter FeedFilter, limit, offset int) ([]*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewStoreError("posts.create", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyAuthorJoin(r.db.WithContext(ctx)).
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewStoreError("posts.get_by_id", err)
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyAuthorJoin(r.db.WithContext(ctx)).
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewStoreError("posts.get_by_user_id", err)
	}
	return posts, nil
}

func (r *postRepository) GetFeedPage(ctx context.Context, filter FeedFilter, limit, offset int) ([]*models.Post, error) {
	defer observability.TrackQuery("feed_page", "posts")()

	if filter.Empty() {
		return []*models.Post{}, nil
	}

	var conds []string
	var args []interface{}
	if len(filter.Tags) > 0 {
		// Non-empty intersection between the post's jsonb tag set and the
		// requester's style preferences.
		conds = append(conds, "EXISTS (SELECT 1 FROM jsonb_array_elements_text(posts.tags) AS tag WHERE tag IN ?)")
		args = append(args, filter.Tags)
	}
	if len(filter.AuthorIDs) > 0 {
		conds = append(conds, "posts.user_id IN ?")
		args = append(args, filter.AuthorIDs)
	}

	var posts []*models.Post
	err := r.applyAuthorJoin(r.db.WithContext(ctx)).
		Where(strings.Join(conds, " OR "), args...).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewStoreError("posts.feed_page", err)
	}
	return posts, nil
}

// applyAuthorJoin denormalizes the author's username and profile image into
// the result for presentation.
func (r *postRepository) applyAuthorJoin(db *gorm.DB) *gorm.DB {
	return db.
		Table("posts").
		Select("posts.*, users.username AS author_username, users.profile_image_url AS author_profile_image_url").
		Joins("JOIN users ON users.id = posts.user_id")
}
