package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/alert"
	alert_mocks "github.com/shenikar/safety_map/internal/alert/mocks"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSOSService(t *testing.T) (*sosService, *mocks.MockUserRepository, *mocks.MockVolunteerRepository, *alert_mocks.MockAlertPublisher) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)
	volunteersMock := mocks.NewMockVolunteerRepository(ctrl)
	publisherMock := alert_mocks.NewMockAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewSOSService(usersMock, volunteersMock, publisherMock, logger)
	return svc.(*sosService), usersMock, volunteersMock, publisherMock
}

func TestTriggerSOS_ContactAndVolunteers(t *testing.T) {
	// Подготовка
	svc, usersMock, volunteersMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &models.User{ID: userID, Name: "Rina", Area: "Banasree", EmergencyEmail: "mom@example.com"}

	// Ожидания
	usersMock.EXPECT().GetByID(ctx, userID).Return(user, nil)
	volunteersMock.EXPECT().ListVerifiedEmails(ctx, "Banasree").Return([]string{"v1@example.com", "", "v2@example.com"}, nil)

	var events []alert.AlertEvent
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e alert.AlertEvent) error {
			events = append(events, e)
			return nil
		}).
		Times(3)

	// Действие
	err := svc.TriggerSOS(ctx, userID, "")

	// Проверки
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, alert.AlertEvent{
		Kind:      alert.KindSOSContact,
		Recipient: "mom@example.com",
		UserName:  "Rina",
		Area:      "Banasree",
		Message:   "Emergency SOS triggered.",
	}, events[0])
	assert.Equal(t, alert.KindSOSVolunteer, events[1].Kind)
	assert.Equal(t, "v1@example.com", events[1].Recipient)
	assert.Equal(t, "v2@example.com", events[2].Recipient)
	assert.Contains(t, events[2].Message, "near you")
}

func TestTriggerSOS_CustomMessage(t *testing.T) {
	svc, usersMock, volunteersMock, publisherMock := newTestSOSService(t)
	userID := uuid.New()

	usersMock.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Rina", Area: "Mirpur", EmergencyEmail: "mom@example.com"}, nil)
	volunteersMock.EXPECT().ListVerifiedEmails(gomock.Any(), "Mirpur").Return(nil, nil)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e alert.AlertEvent) error {
			assert.Equal(t, "help, near the bus stop", e.Message)
			return nil
		})

	err := svc.TriggerSOS(context.Background(), userID, " help, near the bus stop ")

	require.NoError(t, err)
}

func TestTriggerSOS_VolunteerFailureIsolated(t *testing.T) {
	// Подготовка
	svc, usersMock, volunteersMock, publisherMock := newTestSOSService(t)
	userID := uuid.New()

	// Ожидания
	usersMock.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Rina", Area: "Gulshan", EmergencyEmail: "mom@example.com"}, nil)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	volunteersMock.EXPECT().ListVerifiedEmails(gomock.Any(), "Gulshan").Return(nil, errors.New("query timeout"))

	// Действие
	err := svc.TriggerSOS(context.Background(), userID, "")

	// Проверки
	require.NoError(t, err)
}

func TestTriggerSOS_NoContactStillNotifiesVolunteers(t *testing.T) {
	svc, usersMock, volunteersMock, publisherMock := newTestSOSService(t)
	userID := uuid.New()

	usersMock.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Rina", Area: "Uttara"}, nil)
	volunteersMock.EXPECT().ListVerifiedEmails(gomock.Any(), "Uttara").Return([]string{"v@example.com"}, nil)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e alert.AlertEvent) error {
			assert.Equal(t, alert.KindSOSVolunteer, e.Kind)
			return nil
		}).
		Times(1)

	err := svc.TriggerSOS(context.Background(), userID, "")

	require.NoError(t, err)
}

func TestTriggerSOS_ContactPublishError(t *testing.T) {
	svc, usersMock, volunteersMock, publisherMock := newTestSOSService(t)
	userID := uuid.New()
	queueErr := errors.New("redis unavailable")

	usersMock.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Area: "Uttara", EmergencyEmail: "mom@example.com"}, nil)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(queueErr)
	volunteersMock.EXPECT().ListVerifiedEmails(gomock.Any(), gomock.Any()).Times(0)

	err := svc.TriggerSOS(context.Background(), userID, "")

	assert.ErrorIs(t, err, queueErr)
}

func TestTriggerSOS_UserNotFound(t *testing.T) {
	svc, usersMock, _, publisherMock := newTestSOSService(t)

	usersMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, ErrNotFound)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := svc.TriggerSOS(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, ErrNotFound)
}
