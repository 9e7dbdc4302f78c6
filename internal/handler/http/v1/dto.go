package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// RegisterRequest DTO для регистрации
// @Description DTO для регистрации
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	Area           string `json:"area" validate:"required,max=100"`
	EmergencyEmail string `json:"emergencyEmail" validate:"omitempty,email"`
	IsVolunteer    bool   `json:"isVolunteer"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO с данными пользователя
// @Description DTO с данными пользователя
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Area           string    `json:"area"`
	EmergencyEmail string    `json:"emergencyEmail,omitempty"`
	IsVolunteer    bool      `json:"isVolunteer"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LoginResponse DTO с токеном сессии
// @Description DTO с токеном сессии
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SafeRouteResponse DTO безопасного маршрута
// @Description DTO безопасного маршрута: GeoJSON Feature с риском в properties
type SafeRouteResponse struct {
	GeoJSON   *geojson.Feature `json:"geojson" swaggertype:"object"`
	Distance  float64          `json:"distance"`
	RiskScore int              `json:"riskScore"`
	RiskLevel string           `json:"riskLevel"`
}

// CreateReportRequest DTO для отчета об инциденте
// @Description DTO для отчета об инциденте
type CreateReportRequest struct {
	Message   string   `json:"message" validate:"required,max=2000"`
	Area      string   `json:"area,omitempty" validate:"max=100"`
	Latitude  *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
}

// ReportResponse DTO для ответа с отчетом
// @Description DTO для ответа с отчетом
type ReportResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Area      string    `json:"area"`
	Latitude  *float64  `json:"lat,omitempty"`
	Longitude *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingRequest DTO для оценки района; оценка приводится к 1..5
// @Description DTO для оценки района
type RatingRequest struct {
	Area      string   `json:"area" validate:"required,max=100"`
	Score     int      `json:"score"`
	Latitude  *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
}

// RatingAverageResponse DTO средней оценки; avg = null, если оценок нет
// @Description DTO средней оценки района
type RatingAverageResponse struct {
	Area  string   `json:"area"`
	Avg   *float64 `json:"avg"`
	Count int      `json:"count"`
}

// SOSRequest DTO экстренного вызова; тело необязательно
// @Description DTO экстренного вызова
type SOSRequest struct {
	Message string `json:"message" validate:"max=500"`
}

// SuggestPlaceRequest DTO предложения безопасной точки
// @Description DTO предложения безопасной точки
type SuggestPlaceRequest struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Area        string   `json:"area" validate:"required,max=100"`
	Latitude    *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Description string   `json:"description,omitempty" validate:"max=500"`
}

// PlaceResponse DTO безопасной точки
// @Description DTO безопасной точки
type PlaceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Area        string    `json:"area"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"lng"`
	Description string    `json:"description"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdminPlacesResponse DTO для модерации точек
// @Description DTO для модерации точек
type AdminPlacesResponse struct {
	Pending  []*PlaceResponse `json:"pending"`
	Approved []*PlaceResponse `json:"approved"`
}

// VolunteerResponse DTO заявки волонтера
// @Description DTO заявки волонтера
type VolunteerResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Area      string    `json:"area"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UserName  string    `json:"userName,omitempty"`
	UserEmail string    `json:"userEmail,omitempty"`
}

// CheckinRequest DTO для запуска таймера безопасности
// @Description DTO для запуска таймера безопасности
type CheckinRequest struct {
	DueMinutes int `json:"dueMinutes" validate:"required,min=1,max=1440"`
}

// CheckinResponse DTO таймера безопасности
// @Description DTO таймера безопасности
type CheckinResponse struct {
	ID        uuid.UUID `json:"id"`
	DueAt     time.Time `json:"dueAt"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"createdAt"`
}
