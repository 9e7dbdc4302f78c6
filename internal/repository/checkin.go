package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service"
)

type CheckinRepository struct {
	db *pgxpool.Pool
}

func NewCheckinRepository(db *pgxpool.Pool) service.CheckinRepository {
	return &CheckinRepository{db: db}
}

func (r *CheckinRepository) Create(ctx context.Context, checkin *models.Checkin) error {
	query := `
		INSERT INTO checkins (user_id, due_at)
		VALUES ($1, $2) RETURNING id, resolved, created_at;
	`
	err := r.db.QueryRow(ctx, query, checkin.UserID, checkin.DueAt).
		Scan(&checkin.ID, &checkin.Resolved, &checkin.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create checkin: %w", err)
	}
	return nil
}

// ListByUser возвращает таймеры пользователя, новые первыми
func (r *CheckinRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Checkin, error) {
	query := `
		SELECT id, user_id, due_at, resolved, created_at
		FROM checkins
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}
	defer rows.Close()

	checkins := make([]*models.Checkin, 0)
	for rows.Next() {
		c := &models.Checkin{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.DueAt, &c.Resolved, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan checkin row: %w", err)
		}
		checkins = append(checkins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return checkins, nil
}

// Resolve закрывает таймер; чужой или несуществующий таймер - service.ErrNotFound
func (r *CheckinRepository) Resolve(ctx context.Context, id, userID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE checkins SET resolved = TRUE WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve checkin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("checkin with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}
