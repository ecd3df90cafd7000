package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedLabs(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding labs...")

	equipmentIDs, err := mapEquipmentIDs(ctx, db)
	if err != nil {
		return fmt.Errorf("load equipment ids: %w", err)
	}

	for _, lab := range labData {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM labs WHERE name = $1", lab.Name).Scan(&existingID)
		if err == nil {
			log.Printf("    - lab %q already exists, skipping", lab.Name)
			continue
		}

		tx, err := db.Begin(ctx)
		if err != nil {
			return err
		}

		var labID uint64
		err = tx.QueryRow(ctx, `
			INSERT INTO labs (name, head_name, head_email, type, status, research_area, location)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, lab.Name, lab.HeadName, lab.HeadEmail, lab.Type, lab.Status, lab.ResearchArea, lab.Location).Scan(&labID)
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("insert lab %q: %w", lab.Name, err)
		}

		for name, qty := range lab.Equipment {
			equipmentID, ok := equipmentIDs[name]
			if !ok {
				tx.Rollback(ctx)
				return fmt.Errorf("lab %q references unknown equipment %q", lab.Name, name)
			}
			_, err := tx.Exec(ctx,
				"INSERT INTO lab_equipments (lab_id, equipment_id, quantity) VALUES ($1, $2, $3)",
				labID, equipmentID, qty,
			)
			if err != nil {
				tx.Rollback(ctx)
				return fmt.Errorf("assign %q to %q: %w", name, lab.Name, err)
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}
	}
	return nil
}

func mapEquipmentIDs(ctx context.Context, db *pgxpool.Pool) (map[string]uint64, error) {
	rows, err := db.Query(ctx, "SELECT id, name FROM equipments")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]uint64)
	for rows.Next() {
		var id uint64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		ids[name] = id
	}
	return ids, rows.Err()
}
