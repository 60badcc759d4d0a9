package server

import (
	"github.com/gofiber/fiber/v2"

	"hootline/internal/models"
	"hootline/internal/service"
)

// CreateHoot handles POST /api/hoots.
func (s *Server) CreateHoot(c *fiber.Ctx) error {
	caller, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	hoot, err := s.hootService.Create(c.UserContext(), caller, service.CreateHootInput{
		Title:    req.Title,
		Text:     req.Text,
		Category: req.Category,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(hoot)
}

// GetHoots handles GET /api/hoots. Results are newest first.
func (s *Server) GetHoots(c *fiber.Ctx) error {
	hoots, err := s.hootService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(hoots)
}

// GetHoot handles GET /api/hoots/:id.
func (s *Server) GetHoot(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	hoot, err := s.hootService.Get(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(hoot)
}

// UpdateHoot handles PUT /api/hoots/:id. Only the hoot's author may update.
func (s *Server) UpdateHoot(c *fiber.Ctx) error {
	caller, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	hoot, err := s.hootService.Update(c.UserContext(), caller, id, service.UpdateHootInput{
		Title:    req.Title,
		Text:     req.Text,
		Category: req.Category,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(hoot)
}

// DeleteHoot handles DELETE /api/hoots/:id. Only the hoot's author may
// delete; the removed hoot is returned in the response body.
func (s *Server) DeleteHoot(c *fiber.Ctx) error {
	caller, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	hoot, err := s.hootService.Delete(c.UserContext(), caller, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(hoot)
}
