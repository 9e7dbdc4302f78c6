package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service"
)

type RatingRepository struct {
	db *pgxpool.Pool
}

func NewRatingRepository(db *pgxpool.Pool) service.RatingRepository {
	return &RatingRepository{db: db}
}

// UpsertDaily обновляет оценку пользователя для района за сутки [dayStart, dayEnd),
// если ее нет - создает новую. Обе операции в одной транзакции.
func (r *RatingRepository) UpsertDaily(ctx context.Context, rating *models.AreaRating, dayStart, dayEnd time.Time) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		update := `
			UPDATE area_ratings SET score = $1
			WHERE user_id = $2 AND area = $3 AND created_at >= $4 AND created_at < $5
			RETURNING id, lat, lng, created_at;
		`
		err := tx.QueryRow(ctx, update,
			rating.Score,
			rating.UserID,
			rating.Area,
			dayStart,
			dayEnd,
		).Scan(&rating.ID, &rating.Latitude, &rating.Longitude, &rating.CreatedAt)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to update daily rating: %w", err)
		}

		insert := `
			INSERT INTO area_ratings (user_id, area, score, lat, lng)
			VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
		`
		if err := tx.QueryRow(ctx, insert,
			rating.UserID,
			rating.Area,
			rating.Score,
			rating.Latitude,
			rating.Longitude,
		).Scan(&rating.ID, &rating.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}
