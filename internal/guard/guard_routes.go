package guard

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	guards := r.Group("/guards")
	guards.Use(middleware.Authenticate(true))
	{
		guards.GET("", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.List)
		guards.GET("/:id", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.Get)
		guards.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer), h.Create)
		guards.PUT("/:id", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer), h.Update)
		guards.DELETE("/:id", middleware.Allow(domain.RoleAdmin), h.Delete)
		guards.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer), h.BulkCreate)
	}
}
