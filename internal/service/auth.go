package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer выпускает токен сессии для пользователя
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

// AuthService определяет контракт регистрации и входа
type AuthService interface {
	Register(ctx context.Context, input models.Registration) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type authService struct {
	users      UserRepository
	volunteers VolunteerRepository
	tokens     TokenIssuer
	logger     *logrus.Logger
	hashCost   int
}

func NewAuthService(users UserRepository, volunteers VolunteerRepository, tokens TokenIssuer, logger *logrus.Logger) AuthService {
	return &authService{
		users:      users,
		volunteers: volunteers,
		tokens:     tokens,
		logger:     logger,
		hashCost:   bcrypt.DefaultCost,
	}
}

// Register создает пользователя. Если он отметил готовность помогать, создается
// неподтвержденная заявка волонтера для его района.
func (s *authService) Register(ctx context.Context, input models.Registration) (*models.User, error) {
	email := normalizeEmail(input.Email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   email,
	})

	if email == "" || input.Password == "" || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("service: name, email and password required: %w", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		PasswordHash:   string(hash),
		Area:           strings.TrimSpace(input.Area),
		EmergencyEmail: normalizeEmail(input.EmergencyEmail),
		IsVolunteer:    input.IsVolunteer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}
	log.WithField("user_id", user.ID).Info("User registered successfully")

	if user.IsVolunteer && user.Area != "" {
		volunteer := &models.Volunteer{UserID: user.ID, Area: user.Area}
		if err := s.volunteers.Upsert(ctx, volunteer); err != nil {
			log.WithError(err).Error("Failed to create pending volunteer record")
		}
	}
	return user, nil
}

// Login проверяет пароль и выпускает токен сессии
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, fmt.Errorf("service: %w", ErrInvalidCredentials)
		}
		log.WithError(err).Error("Failed to load user by email")
		return "", nil, fmt.Errorf("service: could not load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Password mismatch")
		return "", nil, fmt.Errorf("service: %w", ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return "", nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return token, user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
