package models

import (
	"time"

	"github.com/google/uuid"
)

// Volunteer - заявка пользователя на участие в сети волонтеров района
type Volunteer struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Area      string    `json:"area"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`

	// Заполняются только в админском списке
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}
