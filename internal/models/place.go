package models

import (
	"time"

	"github.com/google/uuid"
)

// SafePlace - безопасная точка (пункт отметки), предложенная пользователем
type SafePlace struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Area        string     `json:"area"`
	Latitude    float64    `json:"lat"`
	Longitude   float64    `json:"lng"`
	Description string     `json:"description"`
	SuggestedBy *uuid.UUID `json:"suggested_by,omitempty"`
	Approved    bool       `json:"approved"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PlaceSuggestion - предложение новой безопасной точки; координаты необязательны
type PlaceSuggestion struct {
	Name        string
	Area        string
	Latitude    *float64
	Longitude   *float64
	Description string
	SuggestedBy *uuid.UUID
}
