package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/alert"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportRepository определяет контракт для работы с бд отчетов об инцидентах
type ReportRepository interface {
	Create(ctx context.Context, report *models.IncidentReport) error
	ListByArea(ctx context.Context, area string) ([]*models.IncidentReport, error)
	List(ctx context.Context, page, pageSize int) ([]*models.IncidentReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportService определяет контракт приема и просмотра отчетов
type ReportService interface {
	SubmitReport(ctx context.Context, userID uuid.UUID, report *models.IncidentReport) error
	ListAreaReports(ctx context.Context, area string) ([]*models.IncidentReport, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.IncidentReport, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
}

type reportService struct {
	repo      ReportRepository
	users     UserRepository
	publisher alert.AlertPublisher
	logger    *logrus.Logger
}

func NewReportService(repo ReportRepository, users UserRepository, publisher alert.AlertPublisher, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:      repo,
		users:     users,
		publisher: publisher,
		logger:    logger,
	}
}

// SubmitReport сохраняет отчет и ставит в очередь письмо экстренному контакту автора.
// Ошибка оповещения не влияет на прием отчета.
func (s *reportService) SubmitReport(ctx context.Context, userID uuid.UUID, report *models.IncidentReport) error {
	report.Area = strings.TrimSpace(report.Area)
	report.Message = strings.TrimSpace(report.Message)
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "SubmitReport",
		"area":    report.Area,
		"user_id": userID,
	})

	if report.Area == "" || report.Message == "" {
		return fmt.Errorf("service: message and area required: %w", ErrInvalidInput)
	}

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}
	log.WithField("report_id", report.ID).Info("Report created successfully")

	s.notifyContact(ctx, log, userID, report)
	return nil
}

func (s *reportService) notifyContact(ctx context.Context, log *logrus.Entry, userID uuid.UUID, report *models.IncidentReport) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to load reporter, emergency contact not notified")
		return
	}
	if user.EmergencyEmail == "" {
		log.Debug("Reporter has no emergency contact on file")
		return
	}

	event := alert.AlertEvent{
		Kind:      alert.KindReport,
		Recipient: user.EmergencyEmail,
		UserName:  user.Name,
		Area:      report.Area,
		Message:   report.Message,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish report alert")
	}
}

// ListAreaReports возвращает отчеты района, новые первыми
func (s *reportService) ListAreaReports(ctx context.Context, area string) ([]*models.IncidentReport, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return nil, fmt.Errorf("service: area required: %w", ErrInvalidInput)
	}

	reports, err := s.repo.ListByArea(ctx, area)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "report",
			"method":  "ListAreaReports",
			"area":    area,
		}).WithError(err).Error("Failed to list area reports from repository")
		return nil, fmt.Errorf("service: could not list area reports: %w", err)
	}
	return reports, nil
}

// ListReports возвращает все отчеты с пагинацией
func (s *reportService) ListReports(ctx context.Context, page, pageSize int) ([]*models.IncidentReport, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      page,
		"page_size": pageSize,
	})

	reports, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Debug("Reports listed successfully")
	return reports, nil
}

// DeleteReport удаляет отчет
func (s *reportService) DeleteReport(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "DeleteReport",
		"report_id": id,
	})

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete report")
		return fmt.Errorf("service: could not delete report: %w", err)
	}

	log.Info("Report deleted successfully")
	return nil
}
