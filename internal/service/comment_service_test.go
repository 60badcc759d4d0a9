package service

import (
	"context"
	"strings"
	"testing"

	"hootline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByHootFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByHoot(ctx context.Context, hootID uint) ([]*models.Comment, error) {
	return s.listByHootFn(ctx, hootID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByHootFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
	}
}

func TestCommentService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopHootRepo())
	caller := &models.User{ID: 1, Username: "alice"}

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(context.Background(), caller, 1, CreateCommentInput{})
		assertValidationError(t, err)
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(context.Background(), caller, 1,
			CreateCommentInput{Text: strings.Repeat("x", 10001)})
		assertValidationError(t, err)
	})
}

func TestCommentService_Create_MissingHoot(t *testing.T) {
	t.Parallel()

	hootRepo := noopHootRepo()
	hootRepo.getByIDFn = func(_ context.Context, id uint) (*models.Hoot, error) {
		return nil, models.NewNotFoundError("Hoot", id)
	}
	created := false
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, _ *models.Comment) error {
		created = true
		return nil
	}
	svc := NewCommentService(commentRepo, hootRepo)

	_, err := svc.Create(context.Background(), &models.User{ID: 1}, 999, CreateCommentInput{Text: "hi"})
	assertNotFoundError(t, err)
	assert.False(t, created, "no comment may be written for a missing hoot")
}

func TestCommentService_Create_AssignsCallerAsAuthor(t *testing.T) {
	t.Parallel()

	var persisted *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 11
		persisted = c
		return nil
	}
	svc := NewCommentService(commentRepo, noopHootRepo())
	// Commenting is open to any authenticated user, not just the hoot owner.
	caller := &models.User{ID: 3, Username: "bob"}

	comment, err := svc.Create(context.Background(), caller, 5, CreateCommentInput{Text: "nice hoot"})
	require.NoError(t, err)
	require.NotNil(t, persisted)

	assert.Equal(t, uint(3), persisted.AuthorID)
	assert.Equal(t, uint(5), persisted.HootID)
	assert.Equal(t, uint(11), comment.ID)
	assert.Equal(t, "bob", comment.Author.Username)
}

func TestCommentService_List(t *testing.T) {
	t.Parallel()

	t.Run("missing hoot surfaces not found", func(t *testing.T) {
		t.Parallel()
		hootRepo := noopHootRepo()
		hootRepo.getByIDFn = func(_ context.Context, id uint) (*models.Hoot, error) {
			return nil, models.NewNotFoundError("Hoot", id)
		}
		svc := NewCommentService(noopCommentRepo(), hootRepo)

		_, err := svc.List(context.Background(), 999)
		assertNotFoundError(t, err)
	})

	t.Run("returns comments in repo order", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.listByHootFn = func(_ context.Context, _ uint) ([]*models.Comment, error) {
			return []*models.Comment{{ID: 1}, {ID: 2}}, nil
		}
		svc := NewCommentService(commentRepo, noopHootRepo())

		comments, err := svc.List(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, uint(1), comments[0].ID)
	})
}
