package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/risk"
	"github.com/sirupsen/logrus"
)

// RatingRepository определяет контракт записи оценок районов
type RatingRepository interface {
	// UpsertDaily обновляет оценку пользователя за [dayStart, dayEnd) или создает новую
	UpsertDaily(ctx context.Context, rating *models.AreaRating, dayStart, dayEnd time.Time) error
}

// RatingService определяет контракт оценок безопасности районов
type RatingService interface {
	SubmitRating(ctx context.Context, rating *models.AreaRating) error
	AreaAverage(ctx context.Context, area string) (*models.RatingAggregate, error)
}

type ratingService struct {
	repo    RatingRepository
	signals SignalRepository
	logger  *logrus.Logger
	now     func() time.Time
}

func NewRatingService(repo RatingRepository, signals SignalRepository, logger *logrus.Logger) RatingService {
	return &ratingService{
		repo:    repo,
		signals: signals,
		logger:  logger,
		now:     time.Now,
	}
}

// SubmitRating записывает оценку; повторная оценка того же района в тот же день заменяет прежнюю
func (s *ratingService) SubmitRating(ctx context.Context, rating *models.AreaRating) error {
	rating.Area = strings.TrimSpace(rating.Area)
	log := s.logger.WithFields(logrus.Fields{
		"service": "rating",
		"method":  "SubmitRating",
		"area":    rating.Area,
		"user_id": rating.UserID,
	})

	if rating.Area == "" || rating.UserID == uuid.Nil {
		return fmt.Errorf("service: area and user required: %w", ErrInvalidInput)
	}
	rating.Score = risk.ClampRating(rating.Score)

	dayStart, dayEnd := dayBounds(s.now())
	if err := s.repo.UpsertDaily(ctx, rating, dayStart, dayEnd); err != nil {
		log.WithError(err).Error("Failed to upsert rating in repository")
		return fmt.Errorf("service: could not save rating: %w", err)
	}

	log.WithField("score", rating.Score).Info("Rating saved successfully")
	return nil
}

// AreaAverage возвращает среднюю оценку района за все время, округленную до сотых
func (s *ratingService) AreaAverage(ctx context.Context, area string) (*models.RatingAggregate, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return &models.RatingAggregate{}, nil
	}

	agg, err := s.signals.AverageRating(ctx, models.SignalFilter{Area: area}, time.Time{})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "rating",
			"method":  "AreaAverage",
			"area":    area,
		}).WithError(err).Error("Failed to aggregate ratings")
		return nil, fmt.Errorf("service: could not aggregate ratings: %w", err)
	}

	result := &models.RatingAggregate{Area: area}
	if agg != nil && agg.Count > 0 {
		result.Count = agg.Count
		result.Average = risk.RoundRating(agg.Average)
	}
	return result, nil
}

// dayBounds - календарные сутки сервера, содержащие t
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
