package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"hootline/internal/cache"
	"hootline/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHootRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHootRepository(db)
	ctx := context.Background()

	hoot := &models.Hoot{Title: "Test Hoot", Text: "Text", Category: models.CategoryNews, AuthorID: 1}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "hoots"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, hoot)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHootRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHootRepository(db)
	ctx := context.Background()

	t.Run("populates author and comment authors", func(t *testing.T) {
		// main query
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hoots" WHERE "hoots"."id" = $1 AND "hoots"."deleted_at" IS NULL ORDER BY "hoots"."id" LIMIT $2`)).
			WithArgs(1, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_id"}).AddRow(1, "Hoot 1", 10))

		// preload author
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "author10"))

		// preload comments in append order
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."hoot_id" = $1 AND "comments"."deleted_at" IS NULL ORDER BY created_at ASC`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "author_id", "hoot_id"}).
				AddRow(1, "first", 20, 1).
				AddRow(2, "second", 10, 1))

		// preload comment authors
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" IN ($1,$2) AND "users"."deleted_at" IS NULL`)).
			WithArgs(20, 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
				AddRow(20, "commenter20").
				AddRow(10, "author10"))

		hoot, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Hoot 1", hoot.Title)
		assert.Equal(t, "author10", hoot.Author.Username)
		require.Len(t, hoot.Comments, 2)
		assert.Equal(t, "first", hoot.Comments[0].Text)
		assert.Equal(t, "commenter20", hoot.Comments[0].Author.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing hoot maps to not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hoots"`)).
			WithArgs(999, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.GetByID(ctx, 999)
		require.Error(t, err)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHootRepository_List_NewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHootRepository(db)

	// The ORDER BY clause is the contract here: listing is newest first.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hoots" WHERE "hoots"."deleted_at" IS NULL ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_id"}).
			AddRow(2, "newer", 10).
			AddRow(1, "older", 10))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "author10"))

	hoots, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, hoots, 2)
	assert.Equal(t, "newer", hoots[0].Title)
	assert.Equal(t, "author10", hoots[0].Author.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHootRepository_List_CachesListing(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(client)
	t.Cleanup(func() {
		cache.SetClient(nil)
		_ = client.Close()
	})

	db, mock := setupMockDB(t)
	repo := NewHootRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hoots" WHERE "hoots"."deleted_at" IS NULL ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_id"}).
			AddRow(1, "cached", 10))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "author10"))

	first, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, mr.Exists(cache.HootsListKey))

	// Second call is served from the cache; no further SQL is expected.
	second, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Title, second[0].Title)
	assert.Equal(t, first[0].Author.Username, second[0].Author.Username)
	assert.NoError(t, mock.ExpectationsWereMet())

	// A new hoot drops the cached listing.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "hoots"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	err = repo.Create(ctx, &models.Hoot{Title: "fresh", Text: "t", Category: models.CategoryNews, AuthorID: 10})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.HootsListKey))
}

func TestHootRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHootRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "hoots" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &models.Hoot{ID: 1, Title: "edited", Text: "x", Category: models.CategoryNews, AuthorID: 1})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
