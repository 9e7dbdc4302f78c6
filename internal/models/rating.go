package models

import (
	"time"

	"github.com/google/uuid"
)

// AreaRating - оценка безопасности района пользователем (1..5), не чаще раза в сутки
type AreaRating struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Area      string    `json:"area"`
	Score     int       `json:"score"`
	Latitude  *float64  `json:"lat,omitempty"`
	Longitude *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingAggregate - среднее значение оценок и их количество
type RatingAggregate struct {
	Area    string
	Average float64
	Count   int
}
