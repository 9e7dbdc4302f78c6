package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/sirupsen/logrus"
)

// areaCenters - центры известных районов [lat, lng], используются если координаты не переданы
var areaCenters = map[string][2]float64{
	"Banasree":  {23.7639, 90.4294},
	"Bashabo":   {23.7416, 90.4218},
	"Dhanmondi": {23.7465, 90.3760},
	"Gulshan":   {23.7925, 90.4078},
	"Banani":    {23.7936, 90.4043},
	"Mirpur":    {23.8223, 90.3654},
	"Uttara":    {23.8747, 90.3984},
	"Motijheel": {23.7324, 90.4178},
}

// PlaceRepository определяет контракт для работы с бд безопасных точек
type PlaceRepository interface {
	Create(ctx context.Context, place *models.SafePlace) error
	ListApproved(ctx context.Context, area string) ([]*models.SafePlace, error)
	ListAll(ctx context.Context) ([]*models.SafePlace, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlaceService определяет контракт каталога безопасных точек
type PlaceService interface {
	ListApproved(ctx context.Context, area string) ([]*models.SafePlace, error)
	Suggest(ctx context.Context, input models.PlaceSuggestion) (*models.SafePlace, error)
	ListAll(ctx context.Context) ([]*models.SafePlace, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type placeService struct {
	repo   PlaceRepository
	logger *logrus.Logger
}

func NewPlaceService(repo PlaceRepository, logger *logrus.Logger) PlaceService {
	return &placeService{
		repo:   repo,
		logger: logger,
	}
}

// ListApproved возвращает одобренные точки, при непустом area - только этого района
func (s *placeService) ListApproved(ctx context.Context, area string) ([]*models.SafePlace, error) {
	places, err := s.repo.ListApproved(ctx, strings.TrimSpace(area))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "place",
			"method":  "ListApproved",
		}).WithError(err).Error("Failed to list approved places")
		return nil, fmt.Errorf("service: could not list places: %w", err)
	}
	return places, nil
}

// Suggest сохраняет предложение на модерацию. Без координат берется центр известного района.
func (s *placeService) Suggest(ctx context.Context, input models.PlaceSuggestion) (*models.SafePlace, error) {
	place := &models.SafePlace{
		Name:        strings.TrimSpace(input.Name),
		Area:        strings.TrimSpace(input.Area),
		Description: strings.TrimSpace(input.Description),
		SuggestedBy: input.SuggestedBy,
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "place",
		"method":  "Suggest",
		"area":    place.Area,
	})

	if place.Name == "" || place.Area == "" {
		return nil, fmt.Errorf("service: name and area required: %w", ErrInvalidInput)
	}

	if input.Latitude != nil && input.Longitude != nil {
		place.Latitude, place.Longitude = *input.Latitude, *input.Longitude
	} else {
		center, ok := areaCenters[place.Area]
		if !ok {
			return nil, fmt.Errorf("service: location or known area required: %w", ErrInvalidInput)
		}
		place.Latitude, place.Longitude = center[0], center[1]
	}

	if err := s.repo.Create(ctx, place); err != nil {
		log.WithError(err).Error("Failed to create place suggestion")
		return nil, fmt.Errorf("service: could not save place: %w", err)
	}

	log.WithField("place_id", place.ID).Info("Place suggested")
	return place, nil
}

func (s *placeService) ListAll(ctx context.Context) ([]*models.SafePlace, error) {
	places, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list places: %w", err)
	}
	return places, nil
}

func (s *placeService) Approve(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Approve(ctx, id); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "place",
			"method":   "Approve",
			"place_id": id,
		}).WithError(err).Warn("Failed to approve place")
		return fmt.Errorf("service: could not approve place: %w", err)
	}
	return nil
}

func (s *placeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "place",
			"method":   "Delete",
			"place_id": id,
		}).WithError(err).Warn("Failed to delete place")
		return fmt.Errorf("service: could not delete place: %w", err)
	}
	return nil
}
