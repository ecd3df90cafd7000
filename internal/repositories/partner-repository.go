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

const partnersTable = "partners"

const partnerFields = "id, name, country, kind, website, logo_path, created_at, updated_at"

type PartnerRepositoryInterface interface {
	GetPartners(ctx context.Context, filter types.Filter) ([]entities.Partner, uint64, error)
	FindPartner(ctx context.Context, id uint64) (*entities.Partner, error)
	CreatePartner(ctx context.Context, partner entities.Partner) (uint64, error)
	UpdatePartner(ctx context.Context, id uint64, partner entities.Partner) error
	DeletePartner(ctx context.Context, id uint64) error
	SetLogoPath(ctx context.Context, id uint64, path string) error
}

type PartnerRepository struct {
	storage *pgxpool.Pool
}

func NewPartnerRepository(storage *pgxpool.Pool) PartnerRepositoryInterface {
	return &PartnerRepository{storage: storage}
}

func scanPartner(row pgx.Row) (*entities.Partner, error) {
	var p entities.Partner
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Country,
		&p.Kind,
		&p.Website,
		&p.LogoPath,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepository) GetPartners(ctx context.Context, filter types.Filter) ([]entities.Partner, uint64, error) {
	base := sq.Select(partnerFields).From(partnersTable).PlaceholderFormat(sq.Dollar)
	countBase := sq.Select("COUNT(*)").From(partnersTable).PlaceholderFormat(sq.Dollar)

	var conds []sq.Sqlizer
	if val, ok := filter.Filter["kind"]; ok {
		conds = append(conds, sq.Eq{"kind": val})
	}
	if val, ok := filter.Filter["country"]; ok {
		conds = append(conds, sq.Eq{"country": val})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		conds = append(conds, sq.ILike{"name": "%" + search + "%"})
	}
	for _, c := range conds {
		base = base.Where(c)
		countBase = countBase.Where(c)
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

	partners := make([]entities.Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, 0, err
		}
		partners = append(partners, *p)
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

	return partners, total, nil
}

func (r *PartnerRepository) FindPartner(ctx context.Context, id uint64) (*entities.Partner, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", partnerFields, partnersTable)

	p, err := scanPartner(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PartnerRepository) CreatePartner(ctx context.Context, partner entities.Partner) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, country, kind, website)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, partnersTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		partner.Name,
		partner.Country,
		partner.Kind,
		partner.Website,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PartnerRepository) UpdatePartner(ctx context.Context, id uint64, partner entities.Partner) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, country = $2, kind = $3, website = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`, partnersTable)

	result, err := r.storage.Exec(ctx, query,
		partner.Name,
		partner.Country,
		partner.Kind,
		partner.Website,
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

func (r *PartnerRepository) DeletePartner(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", partnersTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PartnerRepository) SetLogoPath(ctx context.Context, id uint64, path string) error {
	query := fmt.Sprintf("UPDATE %s SET logo_path = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", partnersTable)

	result, err := r.storage.Exec(ctx, query, path, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
