package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary Submit an incident report
// @Description Report an incident. The area defaults to the area of the logged-in user.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body CreateReportRequest true "Incident report"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "createReport").WithField("user_id", claims.UserID)

	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if strings.TrimSpace(input.Area) == "" {
		input.Area = claims.Area
	}

	model := DTOToReportModel(input)
	if err := h.services.Reports.SubmitReport(c.Request.Context(), claims.UserID, model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(model))
}

// @Summary List reports from my area
// @Description List all reports in the area of the logged-in user, newest first
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/my-area [get]
func (h *Handler) listMyAreaReports(c *gin.Context) {
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "listMyAreaReports").WithField("area", claims.Area)

	reports, err := h.services.Reports.ListAreaReports(c.Request.Context(), claims.Area)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(reports, ModelToReportResponse))
}

// @Summary List all reports
// @Description Get a paginated list of all reports. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/reports [get]
func (h *Handler) adminListReports(c *gin.Context) {
	log := h.logger.WithField("method", "adminListReports")
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 20)

	reports, err := h.services.Reports.ListReports(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(reports, ModelToReportResponse))
}

// @Summary Delete a report
// @Description Delete a report by ID. Requires API key.
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/reports/{id} [delete]
func (h *Handler) adminDeleteReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "adminDeleteReport").WithField("id", id)

	if err := h.services.Reports.DeleteReport(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
