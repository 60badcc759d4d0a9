package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hootline/internal/models"
)

// errResponseWritten signals that the handler already wrote an error response
// to the client, so callers should return nil to Fiber.
var errResponseWritten = fiber.NewError(fiber.StatusOK, "response written")

// parseID parses a positive uint route parameter. On failure it writes a 400
// response and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUser resolves the authenticated caller's full identity. The auth
// middleware only stores the user ID; handlers that need the author document
// go through the user repository (cache-backed) here.
func (s *Server) currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
		return nil, errResponseWritten
	}

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			// A valid token for a user that no longer exists is still unauthorized.
			_ = models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unknown user"))
			return nil, errResponseWritten
		}
		// Anything else is an infrastructure failure, not an auth failure.
		_ = respondServiceError(c, err)
		return nil, errResponseWritten
	}
	return user, nil
}

// respondServiceError maps a service-layer error onto the right HTTP status.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
