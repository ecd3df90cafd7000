package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"research-admin/internal/entities"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
)

const equipmentsTable = "equipments"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, name string) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, name string) error
	DeleteEquipment(ctx context.Context, id uint64) error
	CountAssignments(ctx context.Context, id uint64) (int64, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	base := sq.Select("id, name, created_at, updated_at").From(equipmentsTable).PlaceholderFormat(sq.Dollar)
	countBase := sq.Select("COUNT(*)").From(equipmentsTable).PlaceholderFormat(sq.Dollar)

	if search := strings.TrimSpace(filter.Search); search != "" {
		cond := sq.ILike{"name": "%" + search + "%"}
		base = base.Where(cond)
		countBase = countBase.Where(cond)
	}

	base = applySort(base, filter.Sort, map[string]string{"name": "name", "created_at": "created_at"}, "name ASC")

	if filter.WithPagination {
		if filter.Limit > 0 {
			base = base.Limit(uint64(filter.Limit))
		}
		if filter.Offset > 0 {
			base = base.Offset(uint64(filter.Offset))
		}
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBase.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT id, name, created_at, updated_at FROM %s WHERE id = $1", equipmentsTable)

	var e entities.Equipment
	err := r.storage.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, name string) (uint64, error) {
	query := fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING id", equipmentsTable)

	var id uint64
	if err := r.storage.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, name string) error {
	query := fmt.Sprintf("UPDATE %s SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", equipmentsTable)

	result, err := r.storage.Exec(ctx, query, name, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentsTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAssignments reports how many labs reference a catalog item. The
// service refuses to delete equipment that is still assigned.
func (r *EquipmentRepository) CountAssignments(ctx context.Context, id uint64) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE equipment_id = $1", labEquipmentsTable)

	var count int64
	if err := r.storage.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
