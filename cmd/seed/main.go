package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"pressroom/internal/config"
	"pressroom/internal/db"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// seedUser describes an account ensured by the seeder.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Tag{},
		&model.Article{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := []seedUser{
		{
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			Role:     model.RoleAdmin,
		},
		{
			Name:     "Demo User",
			Email:    "demo@example.com",
			Password: "demo-password",
			Role:     model.RoleUser,
		},
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding users into database...")
	created, skipped, err := seedUsers(ctx, userRepo, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", created)
	log.Printf("  - Users already present: %d", skipped)
}

// seedUsers ensures each account exists, skipping emails already registered.
// Admin accounts are also skipped when the database already holds an admin
// under a different email, so re-running the seeder after an operator renamed
// the admin does not create a second one.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []seedUser) (created int, skipped int, err error) {
	adminCount, err := repo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return 0, 0, fmt.Errorf("count admin users: %w", err)
	}

	for _, u := range users {
		if u.Role == model.RoleAdmin && adminCount > 0 {
			log.Printf("An admin account already exists, skipping %s", u.Email)
			skipped++
			continue
		}

		existing, findErr := repo.FindByEmail(ctx, u.Email)
		if findErr == nil && existing != nil {
			log.Printf("User %s already exists, skipping", u.Email)
			skipped++
			continue
		}

		hash, hashErr := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return created, skipped, fmt.Errorf("hash password for %s: %w", u.Email, hashErr)
		}

		user := &model.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
		}
		if createErr := repo.Create(ctx, user); createErr != nil {
			return created, skipped, fmt.Errorf("create user %s: %w", u.Email, createErr)
		}
		log.Printf("Created user %s (role=%s)", u.Email, u.Role)
		created++
		if u.Role == model.RoleAdmin {
			adminCount++
		}
	}
	return created, skipped, nil
}
