package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @Summary Get my volunteer status
// @Tags Volunteers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VolunteerResponse
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 404 {object} map[string]string "Not a volunteer"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/me [get]
func (h *Handler) getMyVolunteer(c *gin.Context) {
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "getMyVolunteer").WithField("user_id", claims.UserID)

	volunteer, err := h.services.Volunteers.GetStatus(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(volunteer))
}

// @Summary Apply as a volunteer
// @Description Apply as a volunteer in the area of the logged-in user. The application starts unverified.
// @Tags Volunteers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VolunteerResponse
// @Failure 400 {object} map[string]string "Area required"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/apply [post]
func (h *Handler) applyVolunteer(c *gin.Context) {
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "applyVolunteer").WithField("user_id", claims.UserID)

	volunteer, err := h.services.Volunteers.Apply(c.Request.Context(), claims.UserID, claims.Area)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(volunteer))
}

// @Summary Cancel my volunteer application
// @Tags Volunteers
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/me [delete]
func (h *Handler) cancelVolunteer(c *gin.Context) {
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "cancelVolunteer").WithField("user_id", claims.UserID)

	if err := h.services.Volunteers.Cancel(c.Request.Context(), claims.UserID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List volunteers
// @Description List all volunteer applications with user details. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} VolunteerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/volunteers [get]
func (h *Handler) adminListVolunteers(c *gin.Context) {
	log := h.logger.WithField("method", "adminListVolunteers")

	volunteers, err := h.services.Volunteers.ListVolunteers(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(volunteers, ModelToVolunteerResponse))
}

// @Summary Verify a volunteer
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Volunteer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid volunteer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/volunteers/{id}/verify [post]
func (h *Handler) adminVerifyVolunteer(c *gin.Context) {
	h.setVolunteerVerified(c, true)
}

// @Summary Revoke volunteer verification
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Volunteer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid volunteer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/volunteers/{id}/unverify [post]
func (h *Handler) adminUnverifyVolunteer(c *gin.Context) {
	h.setVolunteerVerified(c, false)
}

func (h *Handler) setVolunteerVerified(c *gin.Context, verified bool) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{
		"method":   "setVolunteerVerified",
		"id":       id,
		"verified": verified,
	})

	if err := h.services.Volunteers.SetVerified(c.Request.Context(), id, verified); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
