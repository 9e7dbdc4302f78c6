package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/sos/ping", h.sosPing)
	api.GET("/places", h.listPlaces)
	api.POST("/places/suggest", OptionalSessionMiddleware(h.tokens), h.suggestPlace)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Маршруты для вошедших пользователей
	session := api.Group("", SessionAuthMiddleware(h.tokens, h.logger))
	{
		session.GET("/danger/area", h.getAreaRisk)
		session.GET("/danger/snapshots", h.listSnapshots)
		session.GET("/route/safe", h.getSafeRoute)

		session.POST("/reports", h.createReport)
		session.GET("/reports/my-area", h.listMyAreaReports)

		session.POST("/ratings", h.submitRating)
		session.GET("/ratings/avg", h.getRatingAverage)

		session.POST("/sos", h.triggerSOS)

		session.GET("/volunteers/me", h.getMyVolunteer)
		session.POST("/volunteers/apply", h.applyVolunteer)
		session.DELETE("/volunteers/me", h.cancelVolunteer)

		session.GET("/checkins", h.listCheckins)
		session.POST("/checkins", h.startCheckin)
		session.POST("/checkins/:id/resolve", h.resolveCheckin)
	}

	// Маршруты администратора (API-ключ)
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/reports", h.adminListReports)
		admin.DELETE("/reports/:id", h.adminDeleteReport)

		admin.GET("/places", h.adminListPlaces)
		admin.POST("/places/:id/approve", h.adminApprovePlace)
		admin.DELETE("/places/:id", h.adminDeletePlace)

		admin.GET("/volunteers", h.adminListVolunteers)
		admin.POST("/volunteers/:id/verify", h.adminVerifyVolunteer)
		admin.POST("/volunteers/:id/unverify", h.adminUnverifyVolunteer)
	}
}
