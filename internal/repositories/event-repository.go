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

const eventsTable = "events"

const eventFields = "id, title, body, location, starts_at, ends_at, image_path, published, created_at, updated_at"

type EventRepositoryInterface interface {
	GetEvents(ctx context.Context, filter types.Filter, publishedOnly bool) ([]entities.Event, uint64, error)
	FindEvent(ctx context.Context, id uint64) (*entities.Event, error)
	CreateEvent(ctx context.Context, event entities.Event) (uint64, error)
	UpdateEvent(ctx context.Context, id uint64, event entities.Event) error
	DeleteEvent(ctx context.Context, id uint64) error
	SetImagePath(ctx context.Context, id uint64, path string) error
}

type EventRepository struct {
	storage *pgxpool.Pool
}

func NewEventRepository(storage *pgxpool.Pool) EventRepositoryInterface {
	return &EventRepository{storage: storage}
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var e entities.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Body,
		&e.Location,
		&e.StartsAt,
		&e.EndsAt,
		&e.ImagePath,
		&e.Published,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) GetEvents(ctx context.Context, filter types.Filter, publishedOnly bool) ([]entities.Event, uint64, error) {
	base := sq.Select(eventFields).From(eventsTable).PlaceholderFormat(sq.Dollar)
	countBase := sq.Select("COUNT(*)").From(eventsTable).PlaceholderFormat(sq.Dollar)

	var conds []sq.Sqlizer
	if publishedOnly {
		conds = append(conds, sq.Eq{"published": true})
	}
	if val, ok := filter.Filter["published"]; ok && !publishedOnly {
		conds = append(conds, sq.Eq{"published": val})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"body": pattern},
		})
	}
	for _, c := range conds {
		base = base.Where(c)
		countBase = countBase.Where(c)
	}

	base = applySort(base, filter.Sort,
		map[string]string{"title": "title", "starts_at": "starts_at", "created_at": "created_at"},
		"starts_at DESC NULLS LAST, created_at DESC")

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

	events := make([]entities.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, *e)
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

	return events, total, nil
}

func (r *EventRepository) FindEvent(ctx context.Context, id uint64) (*entities.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", eventFields, eventsTable)

	e, err := scanEvent(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, event entities.Event) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, body, location, starts_at, ends_at, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, eventsTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		event.Title,
		event.Body,
		event.Location,
		event.StartsAt,
		event.EndsAt,
		event.Published,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, id uint64, event entities.Event) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, body = $2, location = $3, starts_at = $4, ends_at = $5,
		    published = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`, eventsTable)

	result, err := r.storage.Exec(ctx, query,
		event.Title,
		event.Body,
		event.Location,
		event.StartsAt,
		event.EndsAt,
		event.Published,
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

func (r *EventRepository) DeleteEvent(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", eventsTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) SetImagePath(ctx context.Context, id uint64, path string) error {
	query := fmt.Sprintf("UPDATE %s SET image_path = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", eventsTable)

	result, err := r.storage.Exec(ctx, query, path, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
