package service

import (
	"context"
	"errors"
	"testing"

	"outfind/internal/models"
	"outfind/internal/repository"
)

// Function-stub fakes for the repository interfaces. Each test overrides
// only the calls it cares about.

type userRepoStub struct {
	getByIDFn                func(context.Context, string) (*models.User, error)
	getByIDCachedFn          func(context.Context, string) (*models.User, error)
	getByUsernameFn          func(context.Context, string) (*models.User, error)
	ensureUserFn             func(context.Context, *models.User) error
	updateFn                 func(context.Context, *models.User) error
	getStylePreferencesFn    func(context.Context, string) ([]string, error)
	updateStylePreferencesFn func(context.Context, string, []string) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDCached(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDCachedFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) EnsureUser(ctx context.Context, user *models.User) error {
	return s.ensureUserFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) GetStylePreferences(ctx context.Context, id string) ([]string, error) {
	return s.getStylePreferencesFn(ctx, id)
}
func (s *userRepoStub) UpdateStylePreferences(ctx context.Context, id string, preferences []string) error {
	return s.updateStylePreferencesFn(ctx, id, preferences)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:                func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByIDCachedFn:          func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:          func(context.Context, string) (*models.User, error) { return nil, nil },
		ensureUserFn:             func(context.Context, *models.User) error { return nil },
		updateFn:                 func(context.Context, *models.User) error { return nil },
		getStylePreferencesFn:    func(context.Context, string) ([]string, error) { return nil, nil },
		updateStylePreferencesFn: func(context.Context, string, []string) error { return nil },
	}
}

type followRepoStub struct {
	followFn          func(context.Context, string, string) (bool, error)
	unfollowFn        func(context.Context, string, string) (bool, error)
	isFollowingFn     func(context.Context, string, string) (bool, error)
	getFollowingIDsFn func(context.Context, string) ([]string, error)
	getFollowersFn    func(context.Context, string, int, int) ([]models.User, error)
	getFollowingFn    func(context.Context, string, int, int) ([]models.User, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	return s.getFollowingIDsFn(ctx, userID)
}
func (s *followRepoStub) GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	return s.getFollowersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	return s.getFollowingFn(ctx, userID, limit, offset)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:          func(context.Context, string, string) (bool, error) { return true, nil },
		unfollowFn:        func(context.Context, string, string) (bool, error) { return true, nil },
		isFollowingFn:     func(context.Context, string, string) (bool, error) { return false, nil },
		getFollowingIDsFn: func(context.Context, string) ([]string, error) { return nil, nil },
		getFollowersFn:    func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
		getFollowingFn:    func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint) (*models.Post, error)
	getByUserIDFn func(context.Context, string, int, int) ([]*models.Post, error)
	getFeedPageFn func(context.Context, repository.FeedFilter, int, int) ([]*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) GetFeedPage(ctx context.Context, filter repository.FeedFilter, limit, offset int) ([]*models.Post, error) {
	return s.getFeedPageFn(ctx, filter, limit, offset)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:      func(context.Context, *models.Post) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		getByUserIDFn: func(context.Context, string, int, int) ([]*models.Post, error) { return nil, nil },
		getFeedPageFn: func(context.Context, repository.FeedFilter, int, int) ([]*models.Post, error) {
			return []*models.Post{}, nil
		},
	}
}

type closetRepoStub struct {
	createFn                func(context.Context, *models.ClothingItem) error
	getByIDFn               func(context.Context, uint) (*models.ClothingItem, error)
	getByUserIDFn           func(context.Context, string, int, int) ([]*models.ClothingItem, error)
	deleteFn                func(context.Context, uint) error
	getRandomEligibleItemFn func(context.Context, string, string, string) (*models.ClothingItem, error)
}

func (s *closetRepoStub) Create(ctx context.Context, item *models.ClothingItem) error {
	return s.createFn(ctx, item)
}
func (s *closetRepoStub) GetByID(ctx context.Context, id uint) (*models.ClothingItem, error) {
	return s.getByIDFn(ctx, id)
}
func (s *closetRepoStub) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*models.ClothingItem, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *closetRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *closetRepoStub) GetRandomEligibleItem(ctx context.Context, userID, category, style string) (*models.ClothingItem, error) {
	return s.getRandomEligibleItemFn(ctx, userID, category, style)
}

func noopClosetRepo() *closetRepoStub {
	return &closetRepoStub{
		createFn:      func(context.Context, *models.ClothingItem) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.ClothingItem, error) { return &models.ClothingItem{}, nil },
		getByUserIDFn: func(context.Context, string, int, int) ([]*models.ClothingItem, error) { return nil, nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		getRandomEligibleItemFn: func(context.Context, string, string, string) (*models.ClothingItem, error) {
			return nil, nil
		},
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected not found error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not found app error, got %#v", err)
	}
}
