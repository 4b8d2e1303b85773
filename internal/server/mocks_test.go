package server

import (
	"context"

	"outfind/internal/models"
	"outfind/internal/repository"
	"outfind/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDCached(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EnsureUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetStylePreferences(ctx context.Context, id string) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) UpdateStylePreferences(ctx context.Context, id string, preferences []string) error {
	args := m.Called(ctx, id, preferences)
	return args.Error(0)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetFeedPage(ctx context.Context, filter repository.FeedFilter, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Follow(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFollowRepository) GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockClosetRepository is a mock of the ClosetRepository interface
type MockClosetRepository struct {
	mock.Mock
}

func (m *MockClosetRepository) Create(ctx context.Context, item *models.ClothingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClosetRepository) GetByID(ctx context.Context, id uint) (*models.ClothingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClothingItem), args.Error(1)
}

func (m *MockClosetRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*models.ClothingItem, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ClothingItem), args.Error(1)
}

func (m *MockClosetRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClosetRepository) GetRandomEligibleItem(ctx context.Context, userID, category, style string) (*models.ClothingItem, error) {
	args := m.Called(ctx, userID, category, style)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClothingItem), args.Error(1)
}

// testMocks bundles the repository mocks behind a Server under test.
type testMocks struct {
	userRepo   *MockUserRepository
	postRepo   *MockPostRepository
	followRepo *MockFollowRepository
	closetRepo *MockClosetRepository
}

// newTestServer builds a Server with mock repositories and real services, and
// a middleware that authenticates every request as userID.
func newTestServer(userID string) (*fiber.App, *Server, *testMocks) {
	mocks := &testMocks{
		userRepo:   new(MockUserRepository),
		postRepo:   new(MockPostRepository),
		followRepo: new(MockFollowRepository),
		closetRepo: new(MockClosetRepository),
	}

	s := &Server{
		userRepo:   mocks.userRepo,
		postRepo:   mocks.postRepo,
		followRepo: mocks.followRepo,
		closetRepo: mocks.closetRepo,
	}
	s.userService = service.NewUserService(mocks.userRepo)
	s.followService = service.NewFollowService(mocks.userRepo, mocks.followRepo)
	s.feedService = service.NewFeedService(mocks.userRepo, mocks.followRepo, mocks.postRepo)
	s.outfitService = service.NewOutfitService(mocks.closetRepo)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})

	return app, s, mocks
}
