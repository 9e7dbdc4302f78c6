package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRatingService(t *testing.T) (*ratingService, *mocks.MockRatingRepository, *mocks.MockSignalRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRatingRepository(ctrl)
	signalsMock := mocks.NewMockSignalRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewRatingService(repoMock, signalsMock, logger).(*ratingService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repoMock, signalsMock
}

func TestSubmitRating_ClampsAndUsesCalendarDay(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected int
	}{
		{"too_low", 0, 1},
		{"too_high", 9, 5},
		{"in_range", 3, 3},
	}

	dayStart := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repoMock, _ := newTestRatingService(t)
			rating := &models.AreaRating{UserID: uuid.New(), Area: " Banasree ", Score: tt.score}

			repoMock.EXPECT().
				UpsertDaily(gomock.Any(), rating, dayStart, dayEnd).
				Return(nil).
				Times(1)

			err := svc.SubmitRating(context.Background(), rating)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, rating.Score)
			assert.Equal(t, "Banasree", rating.Area)
		})
	}
}

func TestSubmitRating_MissingArea(t *testing.T) {
	svc, repoMock, _ := newTestRatingService(t)

	repoMock.EXPECT().UpsertDaily(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.SubmitRating(context.Background(), &models.AreaRating{UserID: uuid.New(), Score: 3})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubmitRating_RepositoryError(t *testing.T) {
	svc, repoMock, _ := newTestRatingService(t)
	dbError := errors.New("deadlock detected")

	repoMock.EXPECT().UpsertDaily(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(dbError)

	err := svc.SubmitRating(context.Background(), &models.AreaRating{UserID: uuid.New(), Area: "Gulshan", Score: 4})

	assert.ErrorIs(t, err, dbError)
}

func TestAreaAverage(t *testing.T) {
	// Подготовка
	svc, _, signalsMock := newTestRatingService(t)
	ctx := context.Background()

	// Ожидания
	// Средняя за все время: since - нулевое время
	signalsMock.EXPECT().
		AverageRating(ctx, models.SignalFilter{Area: "Gulshan"}, time.Time{}).
		Return(&models.RatingAggregate{Area: "Gulshan", Average: 3.456, Count: 7}, nil).
		Times(1)

	// Действие
	agg, err := svc.AreaAverage(ctx, " Gulshan ")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &models.RatingAggregate{Area: "Gulshan", Average: 3.46, Count: 7}, agg)
}

func TestAreaAverage_NoRatings(t *testing.T) {
	svc, _, signalsMock := newTestRatingService(t)

	signalsMock.EXPECT().AverageRating(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RatingAggregate{}, nil)

	agg, err := svc.AreaAverage(context.Background(), "Motijheel")

	require.NoError(t, err)
	assert.Equal(t, &models.RatingAggregate{Area: "Motijheel"}, agg)
}

func TestAreaAverage_EmptyArea(t *testing.T) {
	svc, _, signalsMock := newTestRatingService(t)

	signalsMock.EXPECT().AverageRating(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	agg, err := svc.AreaAverage(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 0, agg.Count)
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("BST", 6*60*60)
	start, end := dayBounds(time.Date(2025, time.June, 1, 23, 59, 0, 0, loc))

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, loc), end)
}
