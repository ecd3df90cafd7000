package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries fills the equipment catalog and the sample labs. Safe to
// run repeatedly: existing rows are left alone.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding dictionaries...")

	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("equipment seeding failed: %v", err)
	}
	if err := seedLabs(ctx, db); err != nil {
		log.Fatalf("lab seeding failed: %v", err)
	}
	log.Println("dictionaries seeded")
}

// SeedAdmin creates the initial back-office account from ADMIN_EMAIL and
// ADMIN_PASSWORD (with development defaults).
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding admin account...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("admin seeding failed: %v", err)
	}
	log.Println("admin account seeded")
}
