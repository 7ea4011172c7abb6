package patrol

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	rounds := r.Group("/night-rounds")
	rounds.Use(middleware.Authenticate(true))
	{
		rounds.GET("/latest", middleware.Allow(domain.RoleClient, domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.Latest)
		rounds.GET("", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO), h.List)
		rounds.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer), h.Create)
		rounds.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer), h.BulkCreate)
	}
}
