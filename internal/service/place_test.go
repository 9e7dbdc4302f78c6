package service

import (
	"bytes"
	"context"
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

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestSuggestPlace_UsesGivenCoordinates(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPlaceRepository(ctrl)
	svc := NewPlaceService(repoMock, newTestLogger())
	lat, lng := 23.75, 90.39
	userID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Create(gomock.Any(), &models.SafePlace{
			Name:        "Pharmacy",
			Area:        "Dhanmondi",
			Latitude:    lat,
			Longitude:   lng,
			SuggestedBy: &userID,
		}).
		Return(nil)

	// Действие
	place, err := svc.Suggest(context.Background(), models.PlaceSuggestion{
		Name: " Pharmacy ", Area: "Dhanmondi", Latitude: &lat, Longitude: &lng, SuggestedBy: &userID,
	})

	// Проверки
	require.NoError(t, err)
	assert.False(t, place.Approved)
}

func TestSuggestPlace_FallsBackToAreaCenter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPlaceRepository(ctrl)
	svc := NewPlaceService(repoMock, newTestLogger())

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	place, err := svc.Suggest(context.Background(), models.PlaceSuggestion{Name: "Police box", Area: "Gulshan"})

	require.NoError(t, err)
	assert.Equal(t, 23.7925, place.Latitude)
	assert.Equal(t, 90.4078, place.Longitude)
}

func TestSuggestPlace_UnknownAreaWithoutCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPlaceRepository(ctrl)
	svc := NewPlaceService(repoMock, newTestLogger())
	lat := 23.7

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Suggest(context.Background(), models.PlaceSuggestion{Name: "Cafe", Area: "Atlantis", Latitude: &lat})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVolunteerApply(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockVolunteerRepository(ctrl)
	svc := NewVolunteerService(repoMock, newTestLogger())
	userID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Upsert(gomock.Any(), &models.Volunteer{UserID: userID, Area: "Mirpur"}).
		Return(nil)

	// Действие
	volunteer, err := svc.Apply(context.Background(), userID, " Mirpur ")

	// Проверки
	require.NoError(t, err)
	assert.False(t, volunteer.Verified)

	_, err = svc.Apply(context.Background(), userID, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVolunteerSetVerified_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockVolunteerRepository(ctrl)
	svc := NewVolunteerService(repoMock, newTestLogger())
	id := uuid.New()

	repoMock.EXPECT().SetVerified(gomock.Any(), id, true).Return(ErrNotFound)

	err := svc.SetVerified(context.Background(), id, true)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStartCheckin_MinimumOneMinute(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCheckinRepository(ctrl)
	svc := NewCheckinService(repoMock, newTestLogger()).(*checkinService)
	svc.now = func() time.Time { return fixedNow }
	userID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Create(gomock.Any(), &models.Checkin{UserID: userID, DueAt: fixedNow.Add(time.Minute)}).
		Return(nil)

	// Действие
	checkin, err := svc.StartCheckin(context.Background(), userID, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(time.Minute), checkin.DueAt)
}

func TestResolveCheckin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCheckinRepository(ctrl)
	svc := NewCheckinService(repoMock, newTestLogger())
	userID, id := uuid.New(), uuid.New()

	repoMock.EXPECT().Resolve(gomock.Any(), id, userID).Return(ErrNotFound)

	err := svc.ResolveCheckin(context.Background(), userID, id)

	assert.ErrorIs(t, err, ErrNotFound)
}
