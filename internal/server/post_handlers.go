// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"outfind/internal/models"
	"outfind/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const maxPostTags = 20

// CreatePost handles POST /api/posts
// The image itself lives in blob storage; the request carries the stable
// reference the storage collaborator returned.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var req struct {
		ImageURL string   `json:"image_url"`
		Caption  string   `json:"caption,omitempty"`
		Tags     []string `json:"tags,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateImageURL(req.ImageURL); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateTags(req.Tags, maxPostTags); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post := &models.Post{
		UserID:   userID,
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
		Tags:     req.Tags,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post_id": post.ID,
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseItemID(c)
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID := c.Params("id")
	page := parsePagination(c, 20)

	posts, err := s.postRepo.GetByUserID(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetFeed handles GET /api/feed?page=N
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	posts, err := s.feedService.ComposeFeed(c.Context(), currentUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}
