package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Check the SOS endpoint
// @Description Liveness probe of the SOS module
// @Tags SOS
// @Produce plain
// @Success 200 {string} string "sos ok"
// @Router /sos/ping [get]
func (h *Handler) sosPing(c *gin.Context) {
	c.String(http.StatusOK, "sos ok")
}

// @Summary Trigger an SOS alert
// @Description Alert the emergency contact of the logged-in user and the verified volunteers of their area
// @Tags SOS
// @Accept json
// @Security BearerAuth
// @Param sos body SOSRequest false "Optional message"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	var input SOSRequest
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "triggerSOS").WithField("user_id", claims.UserID)

	// Тело необязательно: пустой запрос означает вызов без сообщения
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.SOS.TriggerSOS(c.Request.Context(), claims.UserID, input.Message); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
