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

type PlaceRepository struct {
	db *pgxpool.Pool
}

func NewPlaceRepository(db *pgxpool.Pool) service.PlaceRepository {
	return &PlaceRepository{db: db}
}

// Create сохраняет предложенную точку (без одобрения)
func (r *PlaceRepository) Create(ctx context.Context, place *models.SafePlace) error {
	query := `
		INSERT INTO safe_places (name, area, lat, lng, description, suggested_by, approved)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE) RETURNING id, approved, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		place.Name,
		place.Area,
		place.Latitude,
		place.Longitude,
		place.Description,
		place.SuggestedBy,
	).Scan(&place.ID, &place.Approved, &place.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

// ListApproved возвращает одобренные точки; пустой area - все районы
func (r *PlaceRepository) ListApproved(ctx context.Context, area string) ([]*models.SafePlace, error) {
	query := `
		SELECT id, name, area, lat, lng, description, suggested_by, approved, created_at
		FROM safe_places
		WHERE approved AND ($1 = '' OR area = $1)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, area)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved places: %w", err)
	}
	return collectPlaces(rows)
}

// ListAll возвращает все точки для модерации
func (r *PlaceRepository) ListAll(ctx context.Context) ([]*models.SafePlace, error) {
	query := `
		SELECT id, name, area, lat, lng, description, suggested_by, approved, created_at
		FROM safe_places
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return collectPlaces(rows)
}

func (r *PlaceRepository) Approve(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE safe_places SET approved = TRUE WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to approve place: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("place with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM safe_places WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("place with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func collectPlaces(rows pgx.Rows) ([]*models.SafePlace, error) {
	defer rows.Close()

	places := make([]*models.SafePlace, 0)
	for rows.Next() {
		p := &models.SafePlace{}
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Area,
			&p.Latitude,
			&p.Longitude,
			&p.Description,
			&p.SuggestedBy,
			&p.Approved,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return places, nil
}
