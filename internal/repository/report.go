package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// Create создает новую запись об инциденте в бд
func (r *ReportRepository) Create(ctx context.Context, report *models.IncidentReport) error {
	query := `
		INSERT INTO reports (message, area, lat, lng)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.Message,
		report.Area,
		report.Latitude,
		report.Longitude,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// ListByArea возвращает отчеты района, новые первыми
func (r *ReportRepository) ListByArea(ctx context.Context, area string) ([]*models.IncidentReport, error) {
	query := `
		SELECT id, message, area, lat, lng, created_at
		FROM reports
		WHERE area = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, area)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by area: %w", err)
	}
	return collectReports(rows)
}

// List возвращает список отчетов с пагинацией
func (r *ReportRepository) List(ctx context.Context, page, pageSize int) ([]*models.IncidentReport, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT id, message, area, lat, lng, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return collectReports(rows)
}

// Delete удаляет отчет
func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func collectReports(rows pgx.Rows) ([]*models.IncidentReport, error) {
	defer rows.Close()

	reports := make([]*models.IncidentReport, 0)
	for rows.Next() {
		report := &models.IncidentReport{}
		err := rows.Scan(
			&report.ID,
			&report.Message,
			&report.Area,
			&report.Latitude,
			&report.Longitude,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}
