package rating

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	ratings := r.Group("/ratings")
	ratings.Use(middleware.Authenticate(true))
	{
		ratings.POST("", middleware.Allow(domain.RoleClient), h.Create)
		ratings.GET("", middleware.Allow(domain.RoleClient, domain.RoleAdmin, domain.RoleCRO), h.List)
		ratings.POST("/admin", middleware.Allow(domain.RoleAdmin, domain.RoleCRO), h.CreateForClient)
		ratings.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleCRO), h.BulkCreate)
	}
}
