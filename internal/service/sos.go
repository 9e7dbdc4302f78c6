package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/alert"
	"github.com/sirupsen/logrus"
)

const (
	defaultSOSMessage   = "Emergency SOS triggered."
	volunteerSOSMessage = "Emergency SOS (near you). Please check on them if possible."
)

// SOSService определяет контракт экстренного вызова
type SOSService interface {
	TriggerSOS(ctx context.Context, userID uuid.UUID, message string) error
}

type sosService struct {
	users      UserRepository
	volunteers VolunteerRepository
	publisher  alert.AlertPublisher
	logger     *logrus.Logger
}

func NewSOSService(users UserRepository, volunteers VolunteerRepository, publisher alert.AlertPublisher, logger *logrus.Logger) SOSService {
	return &sosService{
		users:      users,
		volunteers: volunteers,
		publisher:  publisher,
		logger:     logger,
	}
}

// TriggerSOS ставит в очередь оповещение экстренному контакту и подтвержденным волонтерам района.
// Сбой рассылки волонтерам только логируется.
func (s *sosService) TriggerSOS(ctx context.Context, userID uuid.UUID, message string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "TriggerSOS",
		"user_id": userID,
	})

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user for SOS")
		return fmt.Errorf("service: could not load user: %w", err)
	}
	log = log.WithField("area", user.Area)
	log.Info("SOS triggered")

	message = strings.TrimSpace(message)
	if message == "" {
		message = defaultSOSMessage
	}

	if user.EmergencyEmail != "" {
		event := alert.AlertEvent{
			Kind:      alert.KindSOSContact,
			Recipient: user.EmergencyEmail,
			UserName:  user.Name,
			Area:      user.Area,
			Message:   message,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish SOS alert for emergency contact")
			return fmt.Errorf("service: could not alert emergency contact: %w", err)
		}
	} else {
		log.Warn("No emergency contact on file")
	}

	sent, err := s.notifyVolunteers(ctx, user.Name, user.Area)
	if err != nil {
		log.WithError(err).Error("Volunteer fan-out failed")
		return nil
	}
	log.WithField("volunteers_notified", sent).Info("SOS alerts queued")
	return nil
}

func (s *sosService) notifyVolunteers(ctx context.Context, userName, area string) (int, error) {
	if area == "" {
		return 0, nil
	}
	emails, err := s.volunteers.ListVerifiedEmails(ctx, area)
	if err != nil {
		return 0, fmt.Errorf("list verified volunteers: %w", err)
	}

	sent := 0
	for _, email := range emails {
		if email == "" {
			continue
		}
		event := alert.AlertEvent{
			Kind:      alert.KindSOSVolunteer,
			Recipient: email,
			UserName:  userName,
			Area:      area,
			Message:   volunteerSOSMessage,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			return sent, fmt.Errorf("publish volunteer alert: %w", err)
		}
		sent++
	}
	return sent, nil
}
