package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/safety_map/internal/auth"
	"github.com/shenikar/safety_map/internal/config"
	"github.com/shenikar/safety_map/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, которые обслуживает HTTP-слой
type Services struct {
	Risk       service.RiskService
	Reports    service.ReportService
	Ratings    service.RatingService
	SOS        service.SOSService
	Auth       service.AuthService
	Places     service.PlaceService
	Volunteers service.VolunteerService
	Checkins   service.CheckinService
}

type Handler struct {
	services Services
	tokens   *auth.TokenManager
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, tokens *auth.TokenManager, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		tokens:   tokens,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// errorStatus сопоставляет ошибку сервиса с HTTP-кодом и коротким сообщением.
// Детали внутренних ошибок клиенту не отдаются.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrNoRoute):
		return http.StatusNotFound, "no route"
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, service.ErrRoutingUnavailable):
		return http.StatusBadGateway, "routing failed"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": msg})
}

// bindAndValidate разбирает JSON-тело и проверяет его тегами validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
