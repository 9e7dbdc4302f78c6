package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service"
)

type VolunteerRepository struct {
	db *pgxpool.Pool
}

func NewVolunteerRepository(db *pgxpool.Pool) service.VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Upsert создает заявку или переносит существующую в новый район со сбросом подтверждения
func (r *VolunteerRepository) Upsert(ctx context.Context, volunteer *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (user_id, area, verified)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id) DO UPDATE SET area = EXCLUDED.area, verified = FALSE
		RETURNING id, verified, created_at;
	`
	err := r.db.QueryRow(ctx, query, volunteer.UserID, volunteer.Area).
		Scan(&volunteer.ID, &volunteer.Verified, &volunteer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert volunteer: %w", err)
	}
	return nil
}

func (r *VolunteerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error) {
	query := `
		SELECT id, user_id, area, verified, created_at
		FROM volunteers
		WHERE user_id = $1;
	`
	v := &models.Volunteer{}
	err := r.db.QueryRow(ctx, query, userID).Scan(&v.ID, &v.UserID, &v.Area, &v.Verified, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("volunteer for user %s: %w", userID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}
	return v, nil
}

// DeleteByUserID удаляет заявку пользователя; отсутствие заявки не ошибка
func (r *VolunteerRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM volunteers WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete volunteer: %w", err)
	}
	return nil
}

// List возвращает все заявки вместе с именем и e-mail пользователя
func (r *VolunteerRepository) List(ctx context.Context) ([]*models.Volunteer, error) {
	query := `
		SELECT v.id, v.user_id, v.area, v.verified, v.created_at, u.name, u.email
		FROM volunteers v
		JOIN users u ON u.id = v.user_id
		ORDER BY v.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := make([]*models.Volunteer, 0)
	for rows.Next() {
		v := &models.Volunteer{}
		if err := rows.Scan(&v.ID, &v.UserID, &v.Area, &v.Verified, &v.CreatedAt, &v.UserName, &v.UserEmail); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return volunteers, nil
}

func (r *VolunteerRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE volunteers SET verified = $1 WHERE id = $2;`, verified, id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListVerifiedEmails возвращает e-mail подтвержденных волонтеров района
func (r *VolunteerRepository) ListVerifiedEmails(ctx context.Context, area string) ([]string, error) {
	query := `
		SELECT u.email
		FROM volunteers v
		JOIN users u ON u.id = v.user_id
		WHERE v.area = $1 AND v.verified;
	`
	rows, err := r.db.Query(ctx, query, area)
	if err != nil {
		return nil, fmt.Errorf("failed to list verified volunteers: %w", err)
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan volunteer emails: %w", err)
	}
	return emails, nil
}
