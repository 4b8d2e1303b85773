// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"strings"

	"outfind/internal/models"
	"outfind/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const maxStyleTags = 20

// AddClothingItem handles POST /api/closet/items
func (s *Server) AddClothingItem(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var req struct {
		ImageURL string   `json:"image_url"`
		Category string   `json:"category"`
		Style    []string `json:"style"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateImageURL(req.ImageURL); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if strings.TrimSpace(req.Category) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Category is required"))
	}
	if err := validation.ValidateTags(req.Style, maxStyleTags); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	item := &models.ClothingItem{
		UserID:   userID,
		ImageURL: req.ImageURL,
		Category: req.Category,
		Style:    req.Style,
	}

	if err := s.closetRepo.Create(ctx, item); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item_id": item.ID,
	})
}

// GetClosetItems handles GET /api/closet/items
func (s *Server) GetClosetItems(c *fiber.Ctx) error {
	page := parsePagination(c, 50)

	items, err := s.closetRepo.GetByUserID(c.Context(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// DeleteClosetItem handles DELETE /api/closet/items/:id
func (s *Server) DeleteClosetItem(c *fiber.Ctx) error {
	id, err := s.parseItemID(c)
	if err != nil {
		return nil
	}

	item, err := s.closetRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if item.UserID != currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only delete your own closet items"))
	}

	if err := s.closetRepo.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// GenerateOutfit handles POST /api/outfits/generate
func (s *Server) GenerateOutfit(c *fiber.Ctx) error {
	var req struct {
		Style      string   `json:"style"`
		Categories []string `json:"categories"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	outfit, err := s.outfitService.GenerateOutfit(c.Context(), currentUserID(c), req.Style, req.Categories)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(outfit)
}
