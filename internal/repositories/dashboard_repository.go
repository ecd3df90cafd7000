package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"research-admin/pkg/types"
)

type DashboardRepositoryInterface interface {
	GetSummary(ctx context.Context) (*types.DashboardSummary, error)
	GetLabsByType(ctx context.Context) ([]types.DashboardCountByGroup, error)
	GetLabsByStatus(ctx context.Context) ([]types.DashboardCountByGroup, error)
	GetPublicationsPerYear(ctx context.Context) ([]types.DashboardChartData, error)
	GetGrantsByAgency(ctx context.Context) ([]types.DashboardCountByGroup, error)
	GetGrantAmountPerYear(ctx context.Context) ([]types.DashboardChartData, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) GetSummary(ctx context.Context) (*types.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM labs),
			(SELECT COUNT(*) FROM labs WHERE status = 'Active'),
			(SELECT COUNT(*) FROM equipments),
			(SELECT COUNT(*) FROM publications),
			(SELECT COUNT(*) FROM grants WHERE status = 'Active'),
			(SELECT COUNT(*) FROM events WHERE published AND starts_at >= NOW())
	`

	summary := &types.DashboardSummary{}
	err := r.storage.QueryRow(ctx, query).Scan(
		&summary.TotalLabs,
		&summary.ActiveLabs,
		&summary.TotalEquipment,
		&summary.TotalPublications,
		&summary.ActiveGrants,
		&summary.UpcomingEvents,
	)
	return summary, err
}

func (r *DashboardRepository) countByGroup(ctx context.Context, builder sq.SelectBuilder) ([]types.DashboardCountByGroup, error) {
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]types.DashboardCountByGroup, 0)
	for rows.Next() {
		var row types.DashboardCountByGroup
		if err := rows.Scan(&row.GroupName, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *DashboardRepository) GetLabsByType(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return r.countByGroup(ctx, sq.
		Select("type", "COUNT(*)").
		From("labs").
		GroupBy("type").
		OrderBy("COUNT(*) DESC"))
}

func (r *DashboardRepository) GetLabsByStatus(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return r.countByGroup(ctx, sq.
		Select("status", "COUNT(*)").
		From("labs").
		GroupBy("status").
		OrderBy("COUNT(*) DESC"))
}

func (r *DashboardRepository) GetGrantsByAgency(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return r.countByGroup(ctx, sq.
		Select("agency", "COUNT(*)").
		From("grants").
		GroupBy("agency").
		OrderBy("COUNT(*) DESC").
		Limit(10))
}

func (r *DashboardRepository) chartData(ctx context.Context, builder sq.SelectBuilder) ([]types.DashboardChartData, error) {
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]types.DashboardChartData, 0)
	for rows.Next() {
		var row types.DashboardChartData
		if err := rows.Scan(&row.Label, &row.Value); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *DashboardRepository) GetPublicationsPerYear(ctx context.Context) ([]types.DashboardChartData, error) {
	return r.chartData(ctx, sq.
		Select("year::text", "COUNT(*)::float8").
		From("publications").
		GroupBy("year").
		OrderBy("year"))
}

func (r *DashboardRepository) GetGrantAmountPerYear(ctx context.Context) ([]types.DashboardChartData, error) {
	return r.chartData(ctx, sq.
		Select("EXTRACT(YEAR FROM start_date)::int::text", "COALESCE(SUM(amount), 0)::float8").
		From("grants").
		Where(sq.NotEq{"start_date": nil}).
		GroupBy("EXTRACT(YEAR FROM start_date)").
		OrderBy("EXTRACT(YEAR FROM start_date)"))
}
