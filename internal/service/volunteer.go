package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/sirupsen/logrus"
)

// VolunteerRepository определяет контракт для работы с бд волонтеров
type VolunteerRepository interface {
	// Upsert создает или обновляет заявку пользователя; заявка становится неподтвержденной
	Upsert(ctx context.Context, volunteer *models.Volunteer) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context) ([]*models.Volunteer, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	ListVerifiedEmails(ctx context.Context, area string) ([]string, error)
}

// VolunteerService определяет контракт сети волонтеров
type VolunteerService interface {
	GetStatus(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error)
	Apply(ctx context.Context, userID uuid.UUID, area string) (*models.Volunteer, error)
	Cancel(ctx context.Context, userID uuid.UUID) error
	ListVolunteers(ctx context.Context) ([]*models.Volunteer, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}

type volunteerService struct {
	repo   VolunteerRepository
	logger *logrus.Logger
}

func NewVolunteerService(repo VolunteerRepository, logger *logrus.Logger) VolunteerService {
	return &volunteerService{
		repo:   repo,
		logger: logger,
	}
}

func (s *volunteerService) GetStatus(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error) {
	volunteer, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get volunteer status: %w", err)
	}
	return volunteer, nil
}

// Apply подает (или обновляет) заявку для района пользователя
func (s *volunteerService) Apply(ctx context.Context, userID uuid.UUID, area string) (*models.Volunteer, error) {
	area = strings.TrimSpace(area)
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "Apply",
		"user_id": userID,
		"area":    area,
	})
	if area == "" {
		return nil, fmt.Errorf("service: area required: %w", ErrInvalidInput)
	}

	volunteer := &models.Volunteer{UserID: userID, Area: area}
	if err := s.repo.Upsert(ctx, volunteer); err != nil {
		log.WithError(err).Error("Failed to upsert volunteer")
		return nil, fmt.Errorf("service: could not apply as volunteer: %w", err)
	}

	log.Info("Volunteer application saved")
	return volunteer, nil
}

func (s *volunteerService) Cancel(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "volunteer",
			"method":  "Cancel",
			"user_id": userID,
		}).WithError(err).Warn("Failed to cancel volunteer application")
		return fmt.Errorf("service: could not cancel volunteer application: %w", err)
	}
	return nil
}

func (s *volunteerService) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	volunteers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "volunteer",
			"method":  "ListVolunteers",
		}).WithError(err).Error("Failed to list volunteers")
		return nil, fmt.Errorf("service: could not list volunteers: %w", err)
	}
	return volunteers, nil
}

// SetVerified подтверждает или отзывает заявку волонтера
func (s *volunteerService) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "volunteer",
		"method":       "SetVerified",
		"volunteer_id": id,
		"verified":     verified,
	})

	if err := s.repo.SetVerified(ctx, id, verified); err != nil {
		log.WithError(err).Warn("Failed to update volunteer verification")
		return fmt.Errorf("service: could not update volunteer: %w", err)
	}

	log.Info("Volunteer verification updated")
	return nil
}
