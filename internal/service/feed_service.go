package service

import (
	"context"

	"outfind/internal/cache"
	"outfind/internal/featureflags"
	"outfind/internal/models"
	"outfind/internal/observability"
	"outfind/internal/repository"
)

// FeedPageSize is the fixed number of posts per feed page.
const FeedPageSize = 20

// feedCacheFlag gates the short-TTL redis cache for composed feed pages.
const feedCacheFlag = "feed_cache"

// FeedService composes the personalized feed: posts whose tags overlap the
// requester's style preferences merged with posts by followed users,
// deduplicated, newest first, paginated.
type FeedService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
	flags      *featureflags.Manager
}

func NewFeedService(userRepo repository.UserRepository, followRepo repository.FollowRepository, postRepo repository.PostRepository) *FeedService {
	return &FeedService{
		userRepo:   userRepo,
		followRepo: followRepo,
		postRepo:   postRepo,
	}
}

// WithFlags enables flag-gated behavior (currently the feed page cache) and
// returns the service for chaining.
func (s *FeedService) WithFlags(flags *featureflags.Manager) *FeedService {
	s.flags = flags
	return s
}

// ComposeFeed returns page `page` (1-based) of the requester's feed.
// An unknown requester is NOT_FOUND; a requester with no preferences and no
// follows gets an empty page, not an error.
func (s *FeedService) ComposeFeed(ctx context.Context, userID string, page int) ([]*models.Post, error) {
	if page < 1 {
		observability.FeedRequestsTotal.WithLabelValues("invalid").Inc()
		return nil, models.NewValidationError("Page must be a positive integer")
	}

	preferences, err := s.userRepo.GetStylePreferences(ctx, userID)
	if err != nil {
		observability.FeedRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	followingIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		observability.FeedRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	filter := repository.FeedFilter{Tags: preferences, AuthorIDs: followingIDs}
	if filter.Empty() {
		observability.FeedRequestsTotal.WithLabelValues("empty").Inc()
		return []*models.Post{}, nil
	}

	offset := (page - 1) * FeedPageSize

	var posts []*models.Post
	load := func() error {
		var loadErr error
		posts, loadErr = s.postRepo.GetFeedPage(ctx, filter, FeedPageSize, offset)
		return loadErr
	}

	if s.flags.Enabled(feedCacheFlag, userID) {
		// Pages are cached for a short window; a follow or preference change
		// shows up within the TTL.
		err = cache.Aside(ctx, cache.FeedKey(userID, page), &posts, cache.FeedTTL, load)
	} else {
		err = load()
	}
	if err != nil {
		observability.FeedRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	observability.FeedRequestsTotal.WithLabelValues("ok").Inc()
	return posts, nil
}
