package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List my check-ins
// @Tags Checkins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CheckinResponse
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkins [get]
func (h *Handler) listCheckins(c *gin.Context) {
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "listCheckins").WithField("user_id", claims.UserID)

	checkins, err := h.services.Checkins.ListCheckins(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(checkins, ModelToCheckinResponse))
}

// @Summary Start a safety check-in
// @Description Start a timer that expects the user to check in within dueMinutes
// @Tags Checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkin body CheckinRequest true "Check-in timer"
// @Success 201 {object} CheckinResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkins [post]
func (h *Handler) startCheckin(c *gin.Context) {
	var input CheckinRequest
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "startCheckin").WithField("user_id", claims.UserID)

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	checkin, err := h.services.Checkins.StartCheckin(c.Request.Context(), claims.UserID, input.DueMinutes)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCheckinResponse(checkin))
}

// @Summary Resolve a check-in
// @Description Mark a check-in of the logged-in user as resolved
// @Tags Checkins
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid check-in ID"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 404 {object} map[string]string "Check-in not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkins/{id}/resolve [post]
func (h *Handler) resolveCheckin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "resolveCheckin").WithField("id", id)

	if err := h.services.Checkins.ResolveCheckin(c.Request.Context(), claims.UserID, id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
