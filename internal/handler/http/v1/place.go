package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_map/internal/models"
)

// @Summary List approved safe places
// @Description List approved safe places, optionally filtered by area
// @Tags Places
// @Produce json
// @Param area query string false "Area name"
// @Success 200 {array} PlaceResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places [get]
func (h *Handler) listPlaces(c *gin.Context) {
	area := strings.TrimSpace(c.Query("area"))
	log := h.logger.WithField("method", "listPlaces").WithField("area", area)

	places, err := h.services.Places.ListApproved(c.Request.Context(), area)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(places, ModelToPlaceResponse))
}

// @Summary Suggest a safe place
// @Description Suggest a safe place for moderation. Without coordinates the area center is used.
// @Tags Places
// @Accept json
// @Produce json
// @Param place body SuggestPlaceRequest true "Safe place suggestion"
// @Success 201 {object} PlaceResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown area"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/suggest [post]
func (h *Handler) suggestPlace(c *gin.Context) {
	var input SuggestPlaceRequest
	log := h.logger.WithField("method", "suggestPlace")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	suggestion := models.PlaceSuggestion{
		Name:        input.Name,
		Area:        input.Area,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Description: input.Description,
	}
	if claims := sessionClaims(c); claims != nil {
		userID := claims.UserID
		suggestion.SuggestedBy = &userID
	}

	place, err := h.services.Places.Suggest(c.Request.Context(), suggestion)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToPlaceResponse(place))
}

// @Summary List places for moderation
// @Description List pending and approved places. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AdminPlacesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/places [get]
func (h *Handler) adminListPlaces(c *gin.Context) {
	log := h.logger.WithField("method", "adminListPlaces")

	places, err := h.services.Places.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAdminPlacesResponse(places))
}

// @Summary Approve a place
// @Description Approve a suggested place. Requires API key.
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Place ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid place ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/places/{id}/approve [post]
func (h *Handler) adminApprovePlace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "adminApprovePlace").WithField("id", id)

	if err := h.services.Places.Approve(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a place
// @Description Delete a place. Requires API key.
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Place ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid place ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/places/{id} [delete]
func (h *Handler) adminDeletePlace(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "adminDeletePlace").WithField("id", id)

	if err := h.services.Places.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
