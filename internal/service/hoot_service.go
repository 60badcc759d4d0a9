// Package service contains the application's business logic, mediating
// between HTTP handlers and repositories.
package service

import (
	"context"

	"hootline/internal/middleware"
	"hootline/internal/models"
	"hootline/internal/observability"
	"hootline/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// HootService enforces the access rules for hoots: mutation is owner-only,
// the author field is server-assigned and immutable, and every returned
// document carries a fully populated author.
type HootService struct {
	hootRepo repository.HootRepository
}

// CreateHootInput carries the caller-supplied content fields for a new hoot.
// The author is deliberately not representable here; it is taken from the
// resolved caller identity.
type CreateHootInput struct {
	Title    string
	Text     string
	Category string
}

// UpdateHootInput carries the content fields a hoot's owner may change.
// Empty fields are left untouched.
type UpdateHootInput struct {
	Title    string
	Text     string
	Category string
}

// NewHootService creates a new HootService.
func NewHootService(hootRepo repository.HootRepository) *HootService {
	return &HootService{hootRepo: hootRepo}
}

const (
	maxTitleLen = 300
	maxTextLen  = 50000
)

func validateContent(title, text, category string, requireAll bool) error {
	if requireAll {
		if title == "" {
			return models.NewValidationError("Title is required")
		}
		if text == "" {
			return models.NewValidationError("Text is required")
		}
		if category == "" {
			return models.NewValidationError("Category is required")
		}
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if len(text) > maxTextLen {
		return models.NewValidationError("Text too long (max 50000 characters)")
	}
	if category != "" && !models.ValidCategory(category) {
		return models.NewValidationError("Invalid category")
	}
	return nil
}

// withAuthor shapes a hoot for the response by substituting the full caller
// identity for the bare author reference. The caller already holds the
// expanded identity, so no dereference round-trip is needed.
func withAuthor(hoot *models.Hoot, caller *models.User) *models.Hoot {
	hoot.Author = *caller
	return hoot
}

// Create persists a new hoot authored by the caller. Any author field in the
// incoming payload is ignored by construction: it is not part of the input type.
func (s *HootService) Create(ctx context.Context, caller *models.User, in CreateHootInput) (*models.Hoot, error) {
	span, ctx := observability.NewSpan(ctx, "HootService.Create")
	defer span.End()

	if err := validateContent(in.Title, in.Text, in.Category, true); err != nil {
		return nil, err
	}

	hoot := &models.Hoot{
		Title:    in.Title,
		Text:     in.Text,
		Category: in.Category,
		AuthorID: caller.ID,
		Comments: []models.Comment{},
	}
	if err := s.hootRepo.Create(ctx, hoot); err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int("hoot.id", int(hoot.ID)))

	middleware.HootsCreated.Inc()
	return withAuthor(hoot, caller), nil
}

// List returns all hoots, newest first, with authors populated.
func (s *HootService) List(ctx context.Context) ([]*models.Hoot, error) {
	return s.hootRepo.List(ctx)
}

// Get returns a single hoot with its author and every comment's author populated.
func (s *HootService) Get(ctx context.Context, id uint) (*models.Hoot, error) {
	return s.hootRepo.GetByID(ctx, id)
}

// Update applies content fields to a hoot owned by the caller. The ownership
// check happens before any write; a non-owner is rejected without touching
// the store. The author field is never part of the update.
func (s *HootService) Update(ctx context.Context, caller *models.User, id uint, in UpdateHootInput) (*models.Hoot, error) {
	span, ctx := observability.NewSpan(ctx, "HootService.Update")
	defer span.End()
	span.AddAttributes(attribute.Int("hoot.id", int(id)))

	hoot, err := s.hootRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if hoot.AuthorID != caller.ID {
		return nil, models.NewUnauthorizedError("You can only update your own hoots")
	}

	if err := validateContent(in.Title, in.Text, in.Category, false); err != nil {
		return nil, err
	}

	if in.Title != "" {
		hoot.Title = in.Title
	}
	if in.Text != "" {
		hoot.Text = in.Text
	}
	if in.Category != "" {
		hoot.Category = in.Category
	}

	if err := s.hootRepo.Update(ctx, hoot); err != nil {
		span.SetError(err)
		return nil, err
	}
	return withAuthor(hoot, caller), nil
}

// Delete removes a hoot owned by the caller and returns the deleted document.
func (s *HootService) Delete(ctx context.Context, caller *models.User, id uint) (*models.Hoot, error) {
	span, ctx := observability.NewSpan(ctx, "HootService.Delete")
	defer span.End()
	span.AddAttributes(attribute.Int("hoot.id", int(id)))

	hoot, err := s.hootRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if hoot.AuthorID != caller.ID {
		return nil, models.NewUnauthorizedError("You can only delete your own hoots")
	}

	if err := s.hootRepo.Delete(ctx, id); err != nil {
		span.SetError(err)
		return nil, err
	}
	return hoot, nil
}
