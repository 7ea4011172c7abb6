package spend

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	spends := r.Group("/spend")
	spends.Use(middleware.Authenticate(true))
	{
		spends.GET("", middleware.Allow(domain.RoleClient, domain.RoleAdmin, domain.RoleFinance), h.List)
		spends.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.Create)
		spends.PUT("/:id", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.Update)
		spends.DELETE("/:id", middleware.Allow(domain.RoleAdmin), h.Delete)
		spends.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.BulkCreate)
	}
}
