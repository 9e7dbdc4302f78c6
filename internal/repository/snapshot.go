package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service"
)

type SnapshotRepository struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) service.SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// UpsertSnapshot записывает последний рассчитанный риск района
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, snapshot *models.AreaRiskSnapshot) error {
	query := `
		INSERT INTO area_risk (area, recent_reports, avg_rating, risk, level, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (area) DO UPDATE SET
			recent_reports = EXCLUDED.recent_reports,
			avg_rating = EXCLUDED.avg_rating,
			risk = EXCLUDED.risk,
			level = EXCLUDED.level,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.db.Exec(ctx, query,
		snapshot.Area,
		snapshot.RecentReports,
		snapshot.AvgRating,
		snapshot.Risk,
		snapshot.Level,
		snapshot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert area risk snapshot: %w", err)
	}
	return nil
}

// ListSnapshots возвращает снимки по убыванию риска
func (r *SnapshotRepository) ListSnapshots(ctx context.Context, limit int) ([]*models.AreaRiskSnapshot, error) {
	query := `
		SELECT area, recent_reports, avg_rating, risk, level, updated_at
		FROM area_risk
		ORDER BY risk DESC, updated_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list area risk snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*models.AreaRiskSnapshot, 0)
	for rows.Next() {
		s := &models.AreaRiskSnapshot{}
		if err := rows.Scan(&s.Area, &s.RecentReports, &s.AvgRating, &s.Risk, &s.Level, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return snapshots, nil
}
