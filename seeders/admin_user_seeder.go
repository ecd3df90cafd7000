package seeders

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"research-admin/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding admin user...")

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@university.edu.my"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-on-first-login"
	}

	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = LOWER($1)", email).Scan(&existingID)
	if err == nil {
		log.Println("    - admin user already exists, skipping")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (full_name, email, password_hash, is_active)
		VALUES ($1, LOWER($2), $3, TRUE)
	`, "Research Office Administrator", email, hash)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}
