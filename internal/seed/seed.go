package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"hootline/internal/models"
)

// Seed populates the database with test data.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d hoots...", opts.NumUsers, opts.NumHoots)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			// Occasional username collisions are fine for seeding.
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	if len(users) == 0 {
		return fmt.Errorf("no users created, cannot seed hoots")
	}
	log.Printf("✓ %d test users created", len(users))

	hoots := make([]*models.Hoot, 0, opts.NumHoots)
	for i := 0; i < opts.NumHoots; i++ {
		author := users[factory.rng.Intn(len(users))]
		hoots = append(hoots, factory.BuildHoot(author))
	}
	if err := factory.CreateHootsBatch(hoots); err != nil {
		return fmt.Errorf("failed to create hoots: %w", err)
	}
	log.Printf("✓ %d hoots created", len(hoots))

	// Sprinkle comments across hoots, 0-5 each.
	commentCount := 0
	for _, hoot := range hoots {
		n := factory.rng.Intn(6)
		for j := 0; j < n; j++ {
			author := users[factory.rng.Intn(len(users))]
			if _, err := factory.CreateComment(author, hoot); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			commentCount++
		}
	}
	log.Printf("✓ %d comments created", commentCount)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, hoots, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
