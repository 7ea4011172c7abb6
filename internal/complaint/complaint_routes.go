package complaint

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	complaints := r.Group("/complaints")
	complaints.Use(middleware.Authenticate(true))
	{
		complaints.POST("", middleware.Allow(domain.RoleClient), h.Create)
		complaints.GET("", middleware.Allow(domain.RoleClient, domain.RoleCRO, domain.RoleAdmin), h.List)
		complaints.PATCH("/:id/status", middleware.Allow(domain.RoleAdmin, domain.RoleCRO), h.Resolve)
	}
}
