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

const publicationsTable = "publications"

const publicationJoinFields = `
	p.id, p.title, p.authors, p.venue, p.year, p.doi, p.lab_id,
	p.created_at, p.updated_at, l.id, l.name`

type PublicationRepositoryInterface interface {
	GetPublications(ctx context.Context, filter types.Filter) ([]entities.Publication, uint64, error)
	FindPublication(ctx context.Context, id uint64) (*entities.Publication, error)
	CreatePublication(ctx context.Context, pub entities.Publication) (uint64, error)
	UpdatePublication(ctx context.Context, id uint64, pub entities.Publication) error
	DeletePublication(ctx context.Context, id uint64) error
}

type PublicationRepository struct {
	storage *pgxpool.Pool
}

func NewPublicationRepository(storage *pgxpool.Pool) PublicationRepositoryInterface {
	return &PublicationRepository{storage: storage}
}

func scanPublication(row pgx.Row) (*entities.Publication, error) {
	var pub entities.Publication
	var labID *uint64
	var labName *string

	err := row.Scan(
		&pub.ID,
		&pub.Title,
		&pub.Authors,
		&pub.Venue,
		&pub.Year,
		&pub.DOI,
		&pub.LabID,
		&pub.CreatedAt,
		&pub.UpdatedAt,
		&labID,
		&labName,
	)
	if err != nil {
		return nil, err
	}

	if labID != nil && labName != nil {
		pub.Lab = &entities.Lab{ID: *labID, Name: *labName}
	}
	return &pub, nil
}

func (r *PublicationRepository) GetPublications(ctx context.Context, filter types.Filter) ([]entities.Publication, uint64, error) {
	base := sq.Select(publicationJoinFields).
		From(publicationsTable + " p").
		LeftJoin("labs l ON l.id = p.lab_id").
		PlaceholderFormat(sq.Dollar)
	countBase := sq.Select("COUNT(*)").From(publicationsTable + " p").PlaceholderFormat(sq.Dollar)

	var conds []sq.Sqlizer
	if val, ok := filter.Filter["year"]; ok {
		conds = append(conds, sq.Eq{"p.year": val})
	}
	if val, ok := filter.Filter["lab_id"]; ok {
		conds = append(conds, sq.Eq{"p.lab_id": val})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"p.title": pattern},
			sq.ILike{"p.authors": pattern},
			sq.ILike{"p.venue": pattern},
		})
	}
	for _, c := range conds {
		base = base.Where(c)
		countBase = countBase.Where(c)
	}

	base = applySort(base, filter.Sort,
		map[string]string{"title": "p.title", "year": "p.year", "created_at": "p.created_at"},
		"p.year DESC, p.title ASC")

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

	pubs := make([]entities.Publication, 0)
	for rows.Next() {
		pub, err := scanPublication(rows)
		if err != nil {
			return nil, 0, err
		}
		pubs = append(pubs, *pub)
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

	return pubs, total, nil
}

func (r *PublicationRepository) FindPublication(ctx context.Context, id uint64) (*entities.Publication, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		LEFT JOIN labs l ON l.id = p.lab_id
		WHERE p.id = $1
	`, publicationJoinFields, publicationsTable)

	pub, err := scanPublication(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return pub, nil
}

func (r *PublicationRepository) CreatePublication(ctx context.Context, pub entities.Publication) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, authors, venue, year, doi, lab_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, publicationsTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		pub.Title,
		pub.Authors,
		pub.Venue,
		pub.Year,
		pub.DOI,
		pub.LabID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PublicationRepository) UpdatePublication(ctx context.Context, id uint64, pub entities.Publication) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, authors = $2, venue = $3, year = $4, doi = $5, lab_id = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`, publicationsTable)

	result, err := r.storage.Exec(ctx, query,
		pub.Title,
		pub.Authors,
		pub.Venue,
		pub.Year,
		pub.DOI,
		pub.LabID,
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

func (r *PublicationRepository) DeletePublication(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", publicationsTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
