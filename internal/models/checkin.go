package models

import (
	"time"

	"github.com/google/uuid"
)

// Checkin - таймер безопасности: пользователь должен отметиться до DueAt
type Checkin struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	DueAt     time.Time `json:"due_at"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}
