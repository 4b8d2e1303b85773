package service

import (
	"context"

	"outfind/internal/models"
	"outfind/internal/repository"
)

// FollowService manages the follow graph. Edge changes and the paired
// follower/following counter adjustments are all-or-nothing.
type FollowService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewFollowService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *FollowService {
	return &FollowService{userRepo: userRepo, followRepo: followRepo}
}

// Follow creates the edge follower -> target. Following an already-followed
// user is a no-op (reported via the returned bool), never a double count.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID string) (bool, error) {
	if followerID == targetID {
		return false, models.NewValidationError("You cannot follow yourself")
	}

	// The edge references the target row; surface a clean 404 instead of a
	// constraint violation when it is missing.
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	return s.followRepo.Follow(ctx, followerID, targetID)
}

// Unfollow removes the edge follower -> target if present.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID string) (bool, error) {
	if followerID == targetID {
		return false, models.NewValidationError("You cannot unfollow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	return s.followRepo.Unfollow(ctx, followerID, targetID)
}

// IsFollowing reports whether follower currently follows target.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID string) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, targetID)
}

// Followers lists the users following userID, most recent first.
func (s *FollowService) Followers(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	return s.followRepo.GetFollowers(ctx, userID, limit, offset)
}

// Following lists the users userID follows, most recent first.
func (s *FollowService) Following(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	return s.followRepo.GetFollowing(ctx, userID, limit, offset)
}
