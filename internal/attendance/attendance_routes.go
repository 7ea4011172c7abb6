package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.Authenticate(true))
	{
		attendances.GET("", middleware.Allow(domain.RoleClient, domain.RoleAdmin, domain.RoleOfficer), h.List)
		attendances.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.Create)
		attendances.PUT("/:id", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.Update)
		attendances.DELETE("/:id", middleware.Allow(domain.RoleAdmin), h.Delete)
		attendances.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.BulkCreate)
	}
}
