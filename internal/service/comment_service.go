package service

import (
	"context"

	"hootline/internal/middleware"
	"hootline/internal/models"
	"hootline/internal/observability"
	"hootline/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// CommentService handles appending and listing comments on hoots. Commenting
// is not owner-gated: any authenticated caller may comment on any hoot.
type CommentService struct {
	commentRepo repository.CommentRepository
	hootRepo    repository.HootRepository
}

// CreateCommentInput carries the caller-supplied content for a new comment.
// As with hoots, the author is taken from the resolved caller identity and is
// not representable in the payload.
type CreateCommentInput struct {
	Text string
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, hootRepo repository.HootRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		hootRepo:    hootRepo,
	}
}

const maxCommentLen = 10000

// Create appends a comment to the hoot and returns it with the caller
// substituted as the full author object.
func (s *CommentService) Create(ctx context.Context, caller *models.User, hootID uint, in CreateCommentInput) (*models.Comment, error) {
	span, ctx := observability.NewSpan(ctx, "CommentService.Create")
	defer span.End()
	span.AddAttributes(attribute.Int("hoot.id", int(hootID)))

	if _, err := s.hootRepo.GetByID(ctx, hootID); err != nil {
		span.SetError(err)
		return nil, err
	}

	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		Text:     in.Text,
		AuthorID: caller.ID,
		HootID:   hootID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	middleware.CommentsCreated.Inc()
	comment.Author = *caller
	return comment, nil
}

// List returns the hoot's comments in append order with authors populated.
func (s *CommentService) List(ctx context.Context, hootID uint) ([]*models.Comment, error) {
	if _, err := s.hootRepo.GetByID(ctx, hootID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByHoot(ctx, hootID)
}
