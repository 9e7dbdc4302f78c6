package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Area           string    `json:"area"`
	EmergencyEmail string    `json:"emergency_email"`
	IsVolunteer    bool      `json:"is_volunteer"`
	CreatedAt      time.Time `json:"created_at"`
}

// Registration - данные регистрации пользователя
type Registration struct {
	Name           string
	Email          string
	Password       string
	Area           string
	EmergencyEmail string
	IsVolunteer    bool
}
