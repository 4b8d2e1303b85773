package service

import (
	"context"
	"strings"

	"outfind/internal/models"
	"outfind/internal/repository"
	"outfind/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID          string
	Username        string
	Bio             string
	ProfileImageURL string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByIDCached(ctx, id)
}

// EnsureUser creates the account row for a freshly verified identity. The
// identity provider owns the id; the row is created on first authenticated
// interaction with a derived placeholder username when none is supplied.
func (s *UserService) EnsureUser(ctx context.Context, id, username string) (*models.User, error) {
	if username == "" {
		username = derivedUsername(id)
	}
	user := &models.User{
		ID:               id,
		Username:         username,
		StylePreferences: []string{},
	}
	if err := s.userRepo.EnsureUser(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, models.NewValidationError("Username already taken")
		}
		user.Username = in.Username
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.ProfileImageURL != "" {
		user.ProfileImageURL = in.ProfileImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateStylePreferences replaces the user's preference set. Tags are
// trimmed and deduplicated; order is irrelevant to matching.
func (s *UserService) UpdateStylePreferences(ctx context.Context, userID string, preferences []string) ([]string, error) {
	const maxPreferences = 50

	cleaned := make([]string, 0, len(preferences))
	seen := map[string]struct{}{}
	for _, tag := range preferences {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return nil, models.NewValidationError("Style preferences must be non-empty strings")
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		cleaned = append(cleaned, tag)
	}
	if len(cleaned) > maxPreferences {
		return nil, models.NewValidationError("Too many style preferences (max 50)")
	}

	if err := s.userRepo.UpdateStylePreferences(ctx, userID, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// derivedUsername builds a stable placeholder username from the identity
// string. Users rename themselves through the profile update.
func derivedUsername(id string) string {
	const prefix = "user_"
	if len(id) > 12 {
		id = id[:12]
	}
	return prefix + strings.ToLower(id)
}
