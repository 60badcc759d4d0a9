// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"hootline/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configure a seeding run.
type Options struct {
	NumUsers    int
	NumHoots    int
	ShouldClean bool
	// SkipBcrypt stores a plaintext password instead of hashing. Faster for
	// large local seeds; never used outside development.
	SkipBcrypt bool
	// MaxDays spreads hoot created_at timestamps over this many days back.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildHoot constructs a hoot struct without persisting it. Useful for
// batching.
func (f *Factory) BuildHoot(author *models.User, overrides ...func(*models.Hoot)) *models.Hoot {
	hoot := &models.Hoot{
		Title:    gofakeit.Sentence(5),
		Text:     gofakeit.Paragraph(1, 3, 5, "\n"),
		Category: models.Categories[f.rng.Intn(len(models.Categories))],
		AuthorID: author.ID,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	hoot.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(hoot)
	}
	return hoot
}

// CreateHoot constructs and persists a sample `models.Hoot` for the given
// author.
func (f *Factory) CreateHoot(author *models.User, overrides ...func(*models.Hoot)) (*models.Hoot, error) {
	hoot := f.BuildHoot(author, overrides...)
	if err := f.db.Create(hoot).Error; err != nil {
		return nil, err
	}
	return hoot, nil
}

// CreateHootsBatch persists multiple hoots in a single DB call.
func (f *Factory) CreateHootsBatch(hoots []*models.Hoot) error {
	if len(hoots) == 0 {
		return nil
	}
	return f.db.Create(&hoots).Error
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided hoot authored by the provided user.
func (f *Factory) CreateComment(author *models.User, hoot *models.Hoot, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     gofakeit.Sentence(8),
		AuthorID: author.ID,
		HootID:   hoot.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
