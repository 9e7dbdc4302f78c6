package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service"
)

type SignalRepository struct {
	db *pgxpool.Pool
}

func NewSignalRepository(db *pgxpool.Pool) service.SignalRepository {
	return &SignalRepository{db: db}
}

// CountReports считает отчеты, созданные не раньше since и подходящие под фильтр
func (r *SignalRepository) CountReports(ctx context.Context, filter models.SignalFilter, since time.Time) (int, error) {
	where, args := buildSignalFilter(filter, since)
	query := `SELECT COUNT(*) FROM reports WHERE ` + where

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// AverageRating возвращает среднюю оценку и количество оценок с since по фильтру
func (r *SignalRepository) AverageRating(ctx context.Context, filter models.SignalFilter, since time.Time) (*models.RatingAggregate, error) {
	where, args := buildSignalFilter(filter, since)
	query := `SELECT COALESCE(AVG(score), 0)::float8, COUNT(*) FROM area_ratings WHERE ` + where

	agg := &models.RatingAggregate{Area: filter.Area}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&agg.Average, &agg.Count); err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	return agg, nil
}

// buildSignalFilter собирает WHERE для отчетов и оценок. Записи без координат
// никогда не попадают в фильтр по области.
func buildSignalFilter(filter models.SignalFilter, since time.Time) (string, []any) {
	args := []any{since}
	conds := []string{"created_at >= $1"}

	if filter.Area != "" {
		args = append(args, filter.Area)
		conds = append(conds, fmt.Sprintf("area = $%d", len(args)))
	}
	if box := filter.Box; box != nil {
		args = append(args, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
		n := len(args)
		conds = append(conds,
			fmt.Sprintf("lat BETWEEN $%d AND $%d", n-3, n-2),
			fmt.Sprintf("lng BETWEEN $%d AND $%d", n-1, n),
		)
	}
	return strings.Join(conds, " AND "), args
}
