// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"outfind/internal/cache"
	"outfind/internal/models"
	"outfind/internal/observability"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow graph operations
type FollowRepository interface {
	// Follow inserts the edge and adjusts both counters in one transaction.
	// Returns false when the edge already existed; counters are then left
	// untouched, making the operation idempotent under concurrency.
	Follow(ctx context.Context, followerID, followingID string) (bool, error)
	// Unfollow removes the edge and decrements both counters in one
	// transaction. Returns false when no edge existed.
	Unfollow(ctx context.Context, followerID, followingID string) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	GetFollowingIDs(ctx context.Context, userID string) ([]string, error)
	GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error)
	GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followingID string) (bool, error) {
	defer observability.TrackQuery("follow", "follows")()

	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conflict-ignored insert; the composite primary key guarantees at
		// most one edge per ordered pair even under concurrent requests.
		res := tx.Exec(
			`INSERT INTO follows (follower_id, following_id, created_at)
			 VALUES (?, ?, NOW())
			 ON CONFLICT (follower_id, following_id) DO NOTHING`,
			followerID, followingID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Edge already exists; counters must not move again.
			return nil
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", followingID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, models.NewStoreError("follows.follow", err)
	}
	if created {
		cache.InvalidateUser(ctx, followerID)
		cache.InvalidateUser(ctx, followingID)
	}
	return created, nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID string) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		// GREATEST keeps the counters non-negative even if they drifted
		// before this schema enforced transactional updates.
		if err := tx.Model(&models.User{}).
			Where("id = ?", followingID).
			UpdateColumn("followers_count", gorm.Expr("GREATEST(followers_count - 1, 0)")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("GREATEST(following_count - 1, 0)")).Error; err != nil {
			return err
		}
		removed = true
		return nil
	})
	if err != nil {
		return false, models.NewStoreError("follows.unfollow", err)
	}
	if removed {
		cache.InvalidateUser(ctx, followerID)
		cache.InvalidateUser(ctx, followingID)
	}
	return removed, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewStoreError("follows.is_following", err)
	}
	return count > 0, nil
}

func (r *followRepository) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	defer observability.TrackQuery("get_following_ids", "follows")()

	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, models.NewStoreError("follows.get_following_ids", err)
	}
	return ids, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewStoreError("follows.get_followers", err)
	}
	return users, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewStoreError("follows.get_following", err)
	}
	return users, nil
}
