package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_map/internal/models"
)

// @Summary Rate an area
// @Description Rate the safety of an area from 1 (unsafe) to 5 (safe). One rating per user, area and day.
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rating body RatingRequest true "Area rating"
// @Success 200 {object} map[string]bool "Rating saved"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ratings [post]
func (h *Handler) submitRating(c *gin.Context) {
	var input RatingRequest
	claims := sessionClaims(c)
	log := h.logger.WithField("method", "submitRating").WithField("user_id", claims.UserID)

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	rating := &models.AreaRating{
		UserID:    claims.UserID,
		Area:      input.Area,
		Score:     input.Score,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if err := h.services.Ratings.SubmitRating(c.Request.Context(), rating); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Get average rating of an area
// @Description Average of all ratings for an area, rounded to two decimals. avg is null when there are none.
// @Tags Ratings
// @Produce json
// @Security BearerAuth
// @Param area query string false "Area name"
// @Success 200 {object} RatingAverageResponse
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ratings/avg [get]
func (h *Handler) getRatingAverage(c *gin.Context) {
	area := strings.TrimSpace(c.Query("area"))
	log := h.logger.WithField("method", "getRatingAverage").WithField("area", area)

	aggregate, err := h.services.Ratings.AreaAverage(c.Request.Context(), area)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRatingAverageResponse(aggregate))
}
