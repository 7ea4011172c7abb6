package site

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sites := r.Group("/sites")
	sites.Use(middleware.Authenticate(true))
	{
		sites.GET("", h.List)
		sites.GET("/:id", middleware.Allow(domain.RoleClient, domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO, domain.RoleFinance), h.Get)
		sites.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleCRO), h.Create)
		sites.PUT("/:id", middleware.Allow(domain.RoleAdmin, domain.RoleCRO), h.Update)
		sites.PATCH("/:id", middleware.Allow(domain.RoleAdmin, domain.RoleCRO), h.Update)
		sites.DELETE("/:id", middleware.Allow(domain.RoleAdmin), h.Delete)
		sites.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleCRO), h.BulkUpsert)
	}
}
