package payroll

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.Authenticate(true))
	{
		payroll.GET("/status", middleware.Allow(domain.RoleClient, domain.RoleAdmin, domain.RoleFinance), h.Status)
		payroll.GET("", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.List)
		payroll.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.Create)
		payroll.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.BulkCreate)
	}
}
