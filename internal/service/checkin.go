package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/sirupsen/logrus"
)

// CheckinRepository определяет контракт для работы с бд таймеров безопасности
type CheckinRepository interface {
	Create(ctx context.Context, checkin *models.Checkin) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Checkin, error)
	Resolve(ctx context.Context, id, userID uuid.UUID) error
}

// CheckinService определяет контракт таймеров безопасности
type CheckinService interface {
	StartCheckin(ctx context.Context, userID uuid.UUID, dueMinutes int) (*models.Checkin, error)
	ListCheckins(ctx context.Context, userID uuid.UUID) ([]*models.Checkin, error)
	ResolveCheckin(ctx context.Context, userID, id uuid.UUID) error
}

type checkinService struct {
	repo   CheckinRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewCheckinService(repo CheckinRepository, logger *logrus.Logger) CheckinService {
	return &checkinService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// StartCheckin запускает таймер на dueMinutes минут (не меньше одной)
func (s *checkinService) StartCheckin(ctx context.Context, userID uuid.UUID, dueMinutes int) (*models.Checkin, error) {
	dueMinutes = max(1, dueMinutes)
	log := s.logger.WithFields(logrus.Fields{
		"service":     "checkin",
		"method":      "StartCheckin",
		"user_id":     userID,
		"due_minutes": dueMinutes,
	})

	checkin := &models.Checkin{
		UserID: userID,
		DueAt:  s.now().Add(time.Duration(dueMinutes) * time.Minute),
	}
	if err := s.repo.Create(ctx, checkin); err != nil {
		log.WithError(err).Error("Failed to create checkin")
		return nil, fmt.Errorf("service: could not start checkin: %w", err)
	}

	log.WithField("checkin_id", checkin.ID).Info("Checkin started")
	return checkin, nil
}

func (s *checkinService) ListCheckins(ctx context.Context, userID uuid.UUID) ([]*models.Checkin, error) {
	checkins, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list checkins: %w", err)
	}
	return checkins, nil
}

// ResolveCheckin отмечает таймер пользователя как закрытый ("я в безопасности")
func (s *checkinService) ResolveCheckin(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Resolve(ctx, id, userID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "checkin",
			"method":     "ResolveCheckin",
			"user_id":    userID,
			"checkin_id": id,
		}).WithError(err).Warn("Failed to resolve checkin")
		return fmt.Errorf("service: could not resolve checkin: %w", err)
	}
	return nil
}
