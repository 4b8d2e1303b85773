// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// VerifyAuth handles POST /api/auth/verify
// The auth middleware has already validated the bearer token; this endpoint
// confirms the resolved identity and creates the account row on a user's
// first authenticated interaction.
func (s *Server) VerifyAuth(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Username string `json:"username,omitempty"`
	}
	// Body is optional; a bare verify still ensures the account exists.
	_ = c.BodyParser(&req)

	user, err := s.userService.EnsureUser(c.Context(), userID, req.Username)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user_id": user.ID,
		"user":    user,
	})
}
