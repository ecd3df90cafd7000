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

const grantsTable = "grants"

const grantJoinFields = `
	g.id, g.title, g.agency, g.amount, g.status, g.start_date, g.end_date,
	g.lab_id, g.created_at, g.updated_at, l.id, l.name`

type GrantRepositoryInterface interface {
	GetGrants(ctx context.Context, filter types.Filter) ([]entities.Grant, uint64, error)
	FindGrant(ctx context.Context, id uint64) (*entities.Grant, error)
	CreateGrant(ctx context.Context, grant entities.Grant) (uint64, error)
	UpdateGrant(ctx context.Context, id uint64, grant entities.Grant) error
	DeleteGrant(ctx context.Context, id uint64) error
}

type GrantRepository struct {
	storage *pgxpool.Pool
}

func NewGrantRepository(storage *pgxpool.Pool) GrantRepositoryInterface {
	return &GrantRepository{storage: storage}
}

func scanGrant(row pgx.Row) (*entities.Grant, error) {
	var grant entities.Grant
	var labID *uint64
	var labName *string

	err := row.Scan(
		&grant.ID,
		&grant.Title,
		&grant.Agency,
		&grant.Amount,
		&grant.Status,
		&grant.StartDate,
		&grant.EndDate,
		&grant.LabID,
		&grant.CreatedAt,
		&grant.UpdatedAt,
		&labID,
		&labName,
	)
	if err != nil {
		return nil, err
	}

	if labID != nil && labName != nil {
		grant.Lab = &entities.Lab{ID: *labID, Name: *labName}
	}
	return &grant, nil
}

func (r *GrantRepository) GetGrants(ctx context.Context, filter types.Filter) ([]entities.Grant, uint64, error) {
	base := sq.Select(grantJoinFields).
		From(grantsTable + " g").
		LeftJoin("labs l ON l.id = g.lab_id").
		PlaceholderFormat(sq.Dollar)
	countBase := sq.Select("COUNT(*)").From(grantsTable + " g").PlaceholderFormat(sq.Dollar)

	var conds []sq.Sqlizer
	if val, ok := filter.Filter["status"]; ok {
		if s, isStr := val.(string); isStr && strings.Contains(s, ",") {
			conds = append(conds, sq.Eq{"g.status": strings.Split(s, ",")})
		} else {
			conds = append(conds, sq.Eq{"g.status": val})
		}
	}
	if val, ok := filter.Filter["agency"]; ok {
		conds = append(conds, sq.Eq{"g.agency": val})
	}
	if val, ok := filter.Filter["lab_id"]; ok {
		conds = append(conds, sq.Eq{"g.lab_id": val})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"g.title": pattern},
			sq.ILike{"g.agency": pattern},
		})
	}
	for _, c := range conds {
		base = base.Where(c)
		countBase = countBase.Where(c)
	}

	base = applySort(base, filter.Sort,
		map[string]string{"title": "g.title", "amount": "g.amount", "start_date": "g.start_date", "created_at": "g.created_at"},
		"g.start_date DESC NULLS LAST")

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

	grants := make([]entities.Grant, 0)
	for rows.Next() {
		grant, err := scanGrant(rows)
		if err != nil {
			return nil, 0, err
		}
		grants = append(grants, *grant)
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

	return grants, total, nil
}

func (r *GrantRepository) FindGrant(ctx context.Context, id uint64) (*entities.Grant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s g
		LEFT JOIN labs l ON l.id = g.lab_id
		WHERE g.id = $1
	`, grantJoinFields, grantsTable)

	grant, err := scanGrant(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return grant, nil
}

func (r *GrantRepository) CreateGrant(ctx context.Context, grant entities.Grant) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, agency, amount, status, start_date, end_date, lab_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, grantsTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		grant.Title,
		grant.Agency,
		grant.Amount,
		grant.Status,
		grant.StartDate,
		grant.EndDate,
		grant.LabID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *GrantRepository) UpdateGrant(ctx context.Context, id uint64, grant entities.Grant) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, agency = $2, amount = $3, status = $4, start_date = $5,
		    end_date = $6, lab_id = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`, grantsTable)

	result, err := r.storage.Exec(ctx, query,
		grant.Title,
		grant.Agency,
		grant.Amount,
		grant.Status,
		grant.StartDate,
		grant.EndDate,
		grant.LabID,
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

func (r *GrantRepository) DeleteGrant(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", grantsTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
