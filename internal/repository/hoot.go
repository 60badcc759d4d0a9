// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"hootline/internal/cache"
	"hootline/internal/models"

	"gorm.io/gorm"
)

// HootRepository defines the interface for hoot data operations.
type HootRepository interface {
	Create(ctx context.Context, hoot *models.Hoot) error
	GetByID(ctx context.Context, id uint) (*models.Hoot, error)
	List(ctx context.Context) ([]*models.Hoot, error)
	Update(ctx context.Context, hoot *models.Hoot) error
	Delete(ctx context.Context, id uint) error
}

// hootRepository implements HootRepository
type hootRepository struct {
	db *gorm.DB
}

// NewHootRepository creates a new hoot repository.
func NewHootRepository(db *gorm.DB) HootRepository {
	return &hootRepository{db: db}
}

func (r *hootRepository) Create(ctx context.Context, hoot *models.Hoot) error {
	if err := r.db.WithContext(ctx).Create(hoot).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateHootsList(ctx)
	return nil
}

// GetByID loads a hoot with its author and every comment's author populated.
// Hoot documents carry no caller-specific fields, so the cached copy is valid
// for every requester.
func (r *hootRepository) GetByID(ctx context.Context, id uint) (*models.Hoot, error) {
	var hoot models.Hoot
	key := cache.HootKey(id)

	err := cache.Aside(ctx, key, &hoot, cache.HootTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Author").
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at ASC")
			}).
			Preload("Comments.Author").
			First(&hoot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Hoot", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &hoot, nil
}

// List returns all hoots ordered by creation time descending, authors
// populated. The listing is cached briefly; every write path invalidates it.
func (r *hootRepository) List(ctx context.Context) ([]*models.Hoot, error) {
	var hoots []*models.Hoot

	err := cache.Aside(ctx, cache.HootsListKey, &hoots, cache.ListTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Author").
			Order("created_at DESC").
			Find(&hoots).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hoots, nil
}

func (r *hootRepository) Update(ctx context.Context, hoot *models.Hoot) error {
	if err := r.db.WithContext(ctx).Save(hoot).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateHoot(ctx, hoot.ID)
	return nil
}

func (r *hootRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Select("Comments").Delete(&models.Hoot{ID: id}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateHoot(ctx, id)
	return nil
}
