package server

import (
	"github.com/gofiber/fiber/v2"

	"hootline/internal/models"
	"hootline/internal/service"
)

// CreateComment handles POST /api/hoots/:id/comments. Any authenticated user
// may comment on any hoot.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	caller, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	hootID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Create(c.UserContext(), caller, hootID,
		service.CreateCommentInput{Text: req.Text})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/hoots/:id/comments. Results are oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	hootID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.List(c.UserContext(), hootID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}
