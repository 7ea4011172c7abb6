package training

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/training")
	reports.Use(middleware.Authenticate(true))
	{
		reports.GET("/latest", h.Latest)
		reports.GET("", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.List)
		reports.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.Create)
		reports.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.BulkCreate)
	}
}
