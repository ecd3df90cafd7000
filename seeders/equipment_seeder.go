package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding equipments...")

	for _, name := range equipmentData {
		_, err := db.Exec(ctx,
			"INSERT INTO equipments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING",
			name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
