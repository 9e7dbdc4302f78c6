package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentReport - неизменяемое сообщение об инциденте в районе
type IncidentReport struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Area      string    `json:"area"`
	Latitude  *float64  `json:"lat,omitempty"`
	Longitude *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
