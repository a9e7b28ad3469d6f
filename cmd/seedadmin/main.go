package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"styledecor/internal/adapter/persistence/repository"
	"styledecor/internal/domain/entities"
	"styledecor/internal/infrastructure/database"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/crypto/bcrypt"
)

// Bootstraps the first administrator account. Safe to re-run: if the
// email is already registered nothing is written.
func main() {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	ctx := context.Background()
	users := repository.NewUserDynamoRepository(database.ConnectDynamoDB())

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("failed to look up admin account: %v", err)
	}
	if existing.ID != "" {
		log.Printf("[seed][admin] account already exists email=%s", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	now := time.Now().UTC()
	admin, err := users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleAdmin,
		Status:       entities.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatalf("failed to create admin account: %v", err)
	}

	log.Printf("[seed][admin] created user_id=%s email=%s", admin.ID, admin.Email)
}
