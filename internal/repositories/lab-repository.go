package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"research-admin/internal/entities"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
)

const labsTable = "labs"
const labEquipmentsTable = "lab_equipments"

const labFields = "id, name, head_name, head_email, type, status, research_area, description, location, contact_phone, equipment_text, created_at, updated_at"

// labFilterColumns maps exposed filter keys to real columns.
var labFilterColumns = map[string]string{
	"type":   "type",
	"status": "status",
}

// labSortColumns maps exposed sort keys to real columns.
var labSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

type LabRepositoryInterface interface {
	GetLabs(ctx context.Context, filter types.Filter) ([]entities.Lab, uint64, error)
	GetAllLabs(ctx context.Context) ([]entities.Lab, error)
	FindLab(ctx context.Context, id uint64) (*entities.Lab, error)
	CreateLab(ctx context.Context, tx pgx.Tx, lab entities.Lab) (uint64, error)
	UpdateLab(ctx context.Context, tx pgx.Tx, id uint64, lab entities.Lab) error
	DeleteLab(ctx context.Context, id uint64) error
	ReplaceEquipment(ctx context.Context, tx pgx.Tx, labID uint64, items []entities.LabEquipment) error
	GetEquipmentForLab(ctx context.Context, labID uint64) ([]entities.LabEquipment, error)
}

type LabRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewLabRepository(storage *pgxpool.Pool, logger *zap.Logger) LabRepositoryInterface {
	return &LabRepository{storage: storage, logger: logger}
}

func scanLab(row pgx.Row) (*entities.Lab, error) {
	var lab entities.Lab
	err := row.Scan(
		&lab.ID,
		&lab.Name,
		&lab.HeadName,
		&lab.HeadEmail,
		&lab.Type,
		&lab.Status,
		&lab.ResearchArea,
		&lab.Description,
		&lab.Location,
		&lab.ContactPhone,
		&lab.EquipmentText,
		&lab.CreatedAt,
		&lab.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lab, nil
}

// GetLabs returns the admin list page: optional type/status filters, a free
// text search over name, head and research area, whitelisted sorting and
// pagination, plus the total matching count.
func (r *LabRepository) GetLabs(ctx context.Context, filter types.Filter) ([]entities.Lab, uint64, error) {
	base := sq.Select(labFields).From(labsTable).PlaceholderFormat(sq.Dollar)
	countBase := sq.Select("COUNT(*)").From(labsTable).PlaceholderFormat(sq.Dollar)

	conds := labListConditions(filter)
	for _, c := range conds {
		base = base.Where(c)
		countBase = countBase.Where(c)
	}

	base = applySort(base, filter.Sort, labSortColumns, "name ASC")

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

	labs := make([]entities.Lab, 0)
	for rows.Next() {
		lab, err := scanLab(rows)
		if err != nil {
			return nil, 0, err
		}
		labs = append(labs, *lab)
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

	return labs, total, nil
}

func labListConditions(filter types.Filter) []sq.Sqlizer {
	var conds []sq.Sqlizer

	for key, val := range filter.Filter {
		col, ok := labFilterColumns[key]
		if !ok {
			continue
		}
		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			conds = append(conds, sq.Eq{col: strings.Split(s, ",")})
		} else {
			conds = append(conds, sq.Eq{col: val})
		}
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"head_name": pattern},
			sq.ILike{"research_area": pattern},
		})
	}

	return conds
}

func applySort(builder sq.SelectBuilder, sort map[string]string, allowed map[string]string, fallback string) sq.SelectBuilder {
	applied := false
	for key, dir := range sort {
		col, ok := allowed[key]
		if !ok {
			continue
		}
		sqlDir := "ASC"
		if strings.EqualFold(dir, "desc") {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", col, sqlDir))
		applied = true
	}
	if !applied && fallback != "" {
		builder = builder.OrderBy(fallback)
	}
	return builder
}

// GetAllLabs returns the whole directory collection for the in-memory query
// engine. equipment_text falls back to the aggregated names of the
// normalized assignments, so pages that still read the legacy field see the
// canonical data.
func (r *LabRepository) GetAllLabs(ctx context.Context) ([]entities.Lab, error) {
	query := fmt.Sprintf(`
		SELECT l.id, l.name, l.head_name, l.head_email, l.type, l.status,
		       l.research_area, l.description, l.location, l.contact_phone,
		       COALESCE(NULLIF(TRIM(l.equipment_text), ''), agg.names) AS equipment_text,
		       l.created_at, l.updated_at
		FROM %s l
		LEFT JOIN (
			SELECT le.lab_id, STRING_AGG(e.name, ', ' ORDER BY e.name) AS names
			FROM %s le
			JOIN equipments e ON e.id = le.equipment_id
			GROUP BY le.lab_id
		) agg ON agg.lab_id = l.id
		ORDER BY l.id
	`, labsTable, labEquipmentsTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labs := make([]entities.Lab, 0)
	for rows.Next() {
		lab, err := scanLab(rows)
		if err != nil {
			return nil, err
		}
		labs = append(labs, *lab)
	}
	return labs, rows.Err()
}

func (r *LabRepository) FindLab(ctx context.Context, id uint64) (*entities.Lab, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", labFields, labsTable)

	lab, err := scanLab(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	equipment, err := r.GetEquipmentForLab(ctx, id)
	if err != nil {
		return nil, err
	}
	lab.Equipment = equipment

	return lab, nil
}

// CreateLab inserts the lab row and returns its generated id. Runs on the
// caller's transaction so the equipment assignments land atomically with it.
func (r *LabRepository) CreateLab(ctx context.Context, tx pgx.Tx, lab entities.Lab) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, head_name, head_email, type, status, research_area, description, location, contact_phone, equipment_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, labsTable)

	var id uint64
	err := tx.QueryRow(ctx, query,
		lab.Name,
		lab.HeadName,
		lab.HeadEmail,
		lab.Type,
		lab.Status,
		lab.ResearchArea,
		lab.Description,
		lab.Location,
		lab.ContactPhone,
		lab.EquipmentText,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *LabRepository) UpdateLab(ctx context.Context, tx pgx.Tx, id uint64, lab entities.Lab) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, head_name = $2, head_email = $3, type = $4, status = $5,
		    research_area = $6, description = $7, location = $8, contact_phone = $9,
		    equipment_text = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
	`, labsTable)

	result, err := tx.Exec(ctx, query,
		lab.Name,
		lab.HeadName,
		lab.HeadEmail,
		lab.Type,
		lab.Status,
		lab.ResearchArea,
		lab.Description,
		lab.Location,
		lab.ContactPhone,
		lab.EquipmentText,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLab removes the lab; its assignment rows go with it via ON DELETE
// CASCADE.
func (r *LabRepository) DeleteLab(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", labsTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceEquipment atomically replaces the lab's assignment set:
// delete-all-then-insert on the caller's transaction. Entries with
// quantity <= 0 must already have been dropped by the service layer.
// A non-existent equipment id fails the insert (FK violation) and the whole
// transaction rolls back; no partial assignment survives.
func (r *LabRepository) ReplaceEquipment(ctx context.Context, tx pgx.Tx, labID uint64, items []entities.LabEquipment) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE lab_id = $1", labEquipmentsTable)
	if _, err := tx.Exec(ctx, deleteQuery, labID); err != nil {
		return fmt.Errorf("clear lab equipment: %w", err)
	}

	insertQuery := fmt.Sprintf(
		"INSERT INTO %s (lab_id, equipment_id, quantity) VALUES ($1, $2, $3)",
		labEquipmentsTable,
	)
	for _, item := range items {
		if _, err := tx.Exec(ctx, insertQuery, labID, item.EquipmentID, item.Quantity); err != nil {
			return fmt.Errorf("insert lab equipment %d: %w", item.EquipmentID, err)
		}
	}
	return nil
}

func (r *LabRepository) GetEquipmentForLab(ctx context.Context, labID uint64) ([]entities.LabEquipment, error) {
	query := fmt.Sprintf(`
		SELECT le.lab_id, le.equipment_id, le.quantity, e.name
		FROM %s le
		JOIN equipments e ON e.id = le.equipment_id
		WHERE le.lab_id = $1
		ORDER BY e.name
	`, labEquipmentsTable)

	rows, err := r.storage.Query(ctx, query, labID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.LabEquipment, 0)
	for rows.Next() {
		var item entities.LabEquipment
		if err := rows.Scan(&item.LabID, &item.EquipmentID, &item.Quantity, &item.EquipmentName); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
