package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_map/internal/models"
)

// @Summary Get area risk
// @Description Compute the current risk of a named area from recent reports and ratings.
// @Description Falls back to the area of the logged-in user.
// @Tags Danger
// @Produce json
// @Security BearerAuth
// @Param name query string false "Area name"
// @Success 200 {object} models.AreaRisk
// @Failure 400 {object} map[string]string "Area required"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /danger/area [get]
func (h *Handler) getAreaRisk(c *gin.Context) {
	area := strings.TrimSpace(c.Query("name"))
	if area == "" {
		if claims := sessionClaims(c); claims != nil {
			area = strings.TrimSpace(claims.Area)
		}
	}
	log := h.logger.WithField("method", "getAreaRisk").WithField("area", area)

	if area == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "area required"})
		return
	}

	result, err := h.services.Risk.AreaRisk(c.Request.Context(), area)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List stored area risk snapshots
// @Description List the last computed risk per area, riskiest first
// @Tags Danger
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of snapshots" default(50)
// @Success 200 {array} models.AreaRiskSnapshot
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /danger/snapshots [get]
func (h *Handler) listSnapshots(c *gin.Context) {
	log := h.logger.WithField("method", "listSnapshots")
	limit := queryInt(c, "limit", h.cfg.SnapshotListLimit)

	snapshots, err := h.services.Risk.ListSnapshots(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// @Summary Get the safest route
// @Description Ask the routing provider for candidate routes and return the one with the lowest risk
// @Tags Route
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start as lng,lat"
// @Param to query string true "End as lng,lat"
// @Param profile query string false "Routing profile" Enums(driving, foot, bicycle) default(driving)
// @Param alternatives query string false "Request alternative routes (1 or 0)" default(1)
// @Success 200 {object} SafeRouteResponse
// @Failure 400 {object} map[string]string "Bad coordinates"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 404 {object} map[string]string "No route"
// @Failure 502 {object} map[string]string "Routing failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /route/safe [get]
func (h *Handler) getSafeRoute(c *gin.Context) {
	log := h.logger.WithField("method", "getSafeRoute")

	from, okFrom := parseLngLat(c.Query("from"))
	to, okTo := parseLngLat(c.Query("to"))
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad coordinates"})
		return
	}

	profile := c.DefaultQuery("profile", "driving")
	if err := h.validate.Var(profile, "oneof=driving foot bicycle"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported profile"})
		return
	}

	req := models.RouteRequest{
		From:         from,
		To:           to,
		Profile:      profile,
		Alternatives: c.DefaultQuery("alternatives", "1") == "1",
	}

	route, err := h.services.Risk.SafeRoute(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSafeRouteResponse(route))
}

// parseLngLat разбирает строку вида "lng,lat" и проверяет диапазоны
func parseLngLat(value string) (models.Coordinate, bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return models.Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Coordinate{}, false
	}
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return models.Coordinate{}, false
	}
	return models.Coordinate{Lng: lng, Lat: lat}, true
}
