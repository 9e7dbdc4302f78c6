package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service"
)

const userCacheTTL = 5 * time.Minute

// cachedUser - представление пользователя в кеше; хеш пароля не кешируется
type cachedUser struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Area           string    `json:"area"`
	EmergencyEmail string    `json:"emergency_email"`
	IsVolunteer    bool      `json:"is_volunteer"`
	CreatedAt      time.Time `json:"created_at"`
}

type UserRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewUserRepository(db *pgxpool.Pool, redisClient *redis.Client) service.UserRepository {
	return &UserRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает пользователя; занятый e-mail возвращает service.ErrAlreadyExists
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, area, emergency_email, is_volunteer)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Area,
		user.EmergencyEmail,
		user.IsVolunteer,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s: %w", user.Email, service.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID возвращает пользователя по UUID, сначала пробуя кеш Redis
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, err := r.getUserFromCache(ctx, id); err == nil && user != nil {
		return user, nil
	}

	query := `
		SELECT id, name, email, password_hash, area, emergency_email, is_volunteer, created_at
		FROM users
		WHERE id = $1;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	// Ошибка записи в кеш не мешает ответу
	_ = r.setUserCache(ctx, user)
	return user, nil
}

// GetByEmail возвращает пользователя по e-mail (с хешем пароля, без кеша)
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, area, emergency_email, is_volunteer, created_at
		FROM users
		WHERE email = $1;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Area,
		&user.EmergencyEmail,
		&user.IsVolunteer,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// getUserFromCache пытается получить пользователя из Redis; промах возвращает nil, nil
func (r *UserRepository) getUserFromCache(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, userCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}

	var cached cachedUser
	if err := json.Unmarshal(val, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user from cache: %w", err)
	}
	return &models.User{
		ID:             cached.ID,
		Name:           cached.Name,
		Email:          cached.Email,
		Area:           cached.Area,
		EmergencyEmail: cached.EmergencyEmail,
		IsVolunteer:    cached.IsVolunteer,
		CreatedAt:      cached.CreatedAt,
	}, nil
}

// setUserCache сохраняет пользователя в Redis
func (r *UserRepository) setUserCache(ctx context.Context, user *models.User) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(cachedUser{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Area:           user.Area,
		EmergencyEmail: user.EmergencyEmail,
		IsVolunteer:    user.IsVolunteer,
		CreatedAt:      user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal user for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, userCacheKey(user.ID), val, userCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set user in cache: %w", err)
	}
	return nil
}
