// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"outfind/internal/models"
	"outfind/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username        string `json:"username"`
		Bio             string `json:"bio"`
		ProfileImageURL string `json:"profile_image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:          currentUserID(c),
		Username:        req.Username,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateStylePreferences handles POST /api/users/me/style-preferences
func (s *Server) UpdateStylePreferences(c *fiber.Ctx) error {
	var req struct {
		Preferences []string `json:"preferences"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	preferences, err := s.userService.UpdateStylePreferences(c.Context(), currentUserID(c), req.Preferences)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":            "success",
		"style_preferences": preferences,
	})
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID := c.Params("id")
	if targetID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	created, err := s.followService.Follow(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"status":    "success",
		"following": true,
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID := c.Params("id")
	if targetID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	if _, err := s.followService.Unfollow(c.Context(), currentUserID(c), targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":    "success",
		"following": false,
	})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id := c.Params("id")
	page := parsePagination(c, 20)

	users, err := s.followService.Followers(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id := c.Params("id")
	page := parsePagination(c, 20)

	users, err := s.followService.Following(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
